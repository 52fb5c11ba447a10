/*
Package hotdeck is a hotkey and deck engine for live production control.

Hotkeys bind triggers (MIDI messages, keyboard chords, on-screen clicks) to an
ordered sequence of actions against a broadcasting tool and an audio mixer.
Hotkeys can be laid out on decks, fixed-size grids of buttons; a main deck may
have sub-decks that temporarily replace its grid.

# Architecture

The engine follows a hexagonal layout. The core (internal/runtime) owns the
hotkey and deck collections, runs the learning state machine and the execution
pipeline, and persists a full snapshot after every change. Everything it talks
to is a port (pkg/ports):

  - SettingsStore persists the snapshot (memory, file, Redis, SQLite).
  - TriggerSource delivers normalized input events (terminal, MQTT).
  - Broadcaster and Mixer are the action targets.
  - EventPublisher receives domain events; the default is observability.Bus.

# Usage

	ctx := context.Background()
	eng, err := hotdeck.New(ctx,
		hotdeck.WithStore(file.New("settings.json")),
		hotdeck.WithBroadcaster(studio),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	deck, _ := eng.CreateDeck(ctx, domain.DeckOptions{Name: "Show"})
	eng.CreateHotkey(ctx, domain.HotkeyOptions{
		Name:     "Intro",
		DeckID:   deck.ID,
		Position: &domain.Position{Row: 0, Col: 0},
		Actions: []domain.Action{{
			Type: domain.ActionSceneSwitch,
			Data: map[string]any{"sceneName": "Intro"},
		}},
	})

	// Bind the next MIDI message or key chord to the hotkey.
	_ = eng.LearnTrigger(ctx, hotkeyID)

	// Feed input from any source until ctx is done.
	_ = hotdeck.NewRunner(source).Run(ctx, eng)
*/
package hotdeck
