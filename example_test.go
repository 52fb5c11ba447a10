package hotdeck_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/hotdeck"
	"github.com/aretw0/hotdeck/pkg/adapters/simulator"
	"github.com/aretw0/hotdeck/pkg/domain"
)

// ExampleNew builds a deck, binds a MIDI knob to a scene switch and fires it
// against the simulated broadcaster.
func ExampleNew() {
	ctx := context.Background()
	studio := simulator.New()

	eng, err := hotdeck.New(ctx,
		hotdeck.WithBroadcaster(studio),
		hotdeck.WithMixer(studio),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	deck, err := eng.CreateDeck(ctx, domain.DeckOptions{Name: "Show", Rows: 2, Columns: 2})
	if err != nil {
		log.Fatal(err)
	}

	knob := domain.MIDIMessage{Type: domain.MIDIControlChange, Channel: 0, Controller: 7}
	eng.CreateHotkey(ctx, domain.HotkeyOptions{
		Name:     "Intro",
		DeckID:   deck.ID,
		Position: &domain.Position{Row: 0, Col: 0},
		Triggers: []domain.Trigger{domain.NewMIDITrigger(knob)},
		Actions: []domain.Action{{
			Type: domain.ActionSceneSwitch,
			Data: map[string]any{"sceneName": "Intro"},
		}},
	})

	eng.Subscribe(func(ev domain.Event) {
		done := ev.(domain.HotkeyExecuted)
		fmt.Printf("%s executed: %v\n", done.Hotkey.Name, done.Success)
	}, domain.EventHotkeyExecuted)

	knob.Value = 100
	eng.HandleMIDI(ctx, knob)
	fmt.Println("program scene:", studio.ProgramScene())

	// Output:
	// Intro executed: true
	// program scene: Intro
}
