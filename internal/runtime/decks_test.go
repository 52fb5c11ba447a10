package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_CreateDeck(t *testing.T) {
	eng, _, rec := newTestEngine(t)
	ctx := context.Background()

	main, err := eng.CreateDeck(ctx, domain.DeckOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Deck 1", main.Name)
	assert.Equal(t, domain.DefaultDeckRows, main.Rows)
	assert.Equal(t, domain.DefaultDeckColumns, main.Columns)
	assert.False(t, main.IsSubDeck())

	sub, err := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: main.ID, Rows: 8, Columns: 1})
	require.NoError(t, err)
	assert.True(t, sub.IsSubDeck())
	assert.Equal(t, main.Rows, sub.Rows, "sub-deck ignores caller size")
	assert.Equal(t, main.Columns, sub.Columns)

	_, err = eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: sub.ID})
	assert.ErrorIs(t, err, domain.ErrNestedSubDeck)

	orphan, err := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: "deck_ghost", Rows: 3, Columns: 5})
	require.NoError(t, err)
	assert.False(t, orphan.IsSubDeck())
	assert.Equal(t, 3, orphan.Rows)

	_, err = eng.CreateDeck(ctx, domain.DeckOptions{Rows: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidDeckSize)

	assert.Equal(t, []domain.EventType{domain.EventDeckCreated, domain.EventDeckCreated, domain.EventDeckCreated}, rec.types())
	assert.Len(t, eng.MainDecks(), 2)
	assert.Len(t, eng.SubDecks(main.ID), 1)
}

func TestEngine_UpdateDeck_PropagatesSize(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()
	main, _ := eng.CreateDeck(ctx, domain.DeckOptions{Rows: 2, Columns: 2})
	subA, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: main.ID})
	subB, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: main.ID})

	require.True(t, eng.UpdateDeck(ctx, main.ID, domain.DeckPatch{Rows: ptr(3), Columns: ptr(5)}))
	for _, id := range []string{subA.ID, subB.ID} {
		d, ok := eng.Deck(id)
		require.True(t, ok)
		assert.Equal(t, 3, d.Rows)
		assert.Equal(t, 5, d.Columns)
	}

	require.True(t, eng.UpdateDeck(ctx, subA.ID, domain.DeckPatch{Name: ptr("Alt"), Rows: ptr(7)}))
	d, _ := eng.Deck(subA.ID)
	assert.Equal(t, "Alt", d.Name)
	assert.Equal(t, 3, d.Rows, "sub-deck size follows its parent only")

	assert.False(t, eng.UpdateDeck(ctx, main.ID, domain.DeckPatch{Rows: ptr(0)}))
	assert.False(t, eng.UpdateDeck(ctx, "deck_ghost", domain.DeckPatch{Name: ptr("x")}))
}

func TestEngine_DeleteDeck_Cascades(t *testing.T) {
	eng, _, rec := newTestEngine(t)
	ctx := context.Background()
	main, _ := eng.CreateDeck(ctx, domain.DeckOptions{Rows: 2, Columns: 2})
	sub, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: main.ID})
	other, _ := eng.CreateDeck(ctx, domain.DeckOptions{Rows: 2, Columns: 2})

	onMain := eng.CreateHotkey(ctx, domain.HotkeyOptions{DeckID: main.ID, Position: &domain.Position{}})
	onSub := eng.CreateHotkey(ctx, domain.HotkeyOptions{DeckID: sub.ID, Position: &domain.Position{}})
	onOther := eng.CreateHotkey(ctx, domain.HotkeyOptions{DeckID: other.ID, Position: &domain.Position{}})
	require.True(t, eng.SwitchToSubDeck(ctx, main.ID, sub.ID))
	rec.reset()

	require.True(t, eng.DeleteDeck(ctx, main.ID))
	assert.False(t, eng.DeleteDeck(ctx, main.ID))

	_, ok := eng.Deck(sub.ID)
	assert.False(t, ok, "sub-deck deleted with parent")
	for _, id := range []string{onMain.ID, onSub.ID} {
		h, ok := eng.Hotkey(id)
		require.True(t, ok, "hotkeys are detached, not deleted")
		assert.Empty(t, h.DeckID)
		assert.Nil(t, h.Position)
	}
	h, _ := eng.Hotkey(onOther.ID)
	assert.Equal(t, other.ID, h.DeckID)
	assert.Empty(t, eng.ActiveSubDecks())

	deleted := 0
	for _, typ := range rec.types() {
		if typ == domain.EventDeckDeleted {
			deleted++
		}
	}
	assert.Equal(t, 2, deleted)
}

func TestEngine_DeleteSubDeck_ClearsActiveEntry(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()
	main, _ := eng.CreateDeck(ctx, domain.DeckOptions{})
	sub, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: main.ID})
	require.True(t, eng.SwitchToSubDeck(ctx, main.ID, sub.ID))

	require.True(t, eng.DeleteDeck(ctx, sub.ID))
	_, ok := eng.ActiveSubDeck(main.ID)
	assert.False(t, ok)
	_, ok = eng.Deck(main.ID)
	assert.True(t, ok)
}

func TestEngine_SwitchToSubDeck(t *testing.T) {
	eng, _, rec := newTestEngine(t)
	ctx := context.Background()
	mainA, _ := eng.CreateDeck(ctx, domain.DeckOptions{})
	mainB, _ := eng.CreateDeck(ctx, domain.DeckOptions{})
	subA, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: mainA.ID})
	subB, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: mainB.ID})

	assert.False(t, eng.SwitchToSubDeck(ctx, mainA.ID, subB.ID), "wrong parent")
	assert.False(t, eng.SwitchToSubDeck(ctx, mainA.ID, "deck_ghost"))
	assert.False(t, eng.SwitchToSubDeck(ctx, "deck_ghost", subA.ID))
	assert.Empty(t, eng.ActiveSubDecks(), "rejected switches leave the map unchanged")

	require.True(t, eng.SwitchToSubDeck(ctx, mainA.ID, subA.ID))
	require.True(t, eng.SwitchToSubDeck(ctx, mainB.ID, subB.ID))
	assert.Equal(t, map[string]string{mainA.ID: subA.ID, mainB.ID: subB.ID}, eng.ActiveSubDecks(), "selections are independent")

	ev, ok := rec.last(domain.EventSubDeckSwitched).(domain.SubDeckSwitched)
	require.True(t, ok)
	assert.Equal(t, domain.SubDeckSwitched{MainDeckID: mainB.ID, SubDeckID: subB.ID}, ev)

	require.True(t, eng.SwitchBackToMainDeck(ctx, mainA.ID))
	assert.False(t, eng.SwitchBackToMainDeck(ctx, "deck_ghost"))
	assert.Equal(t, map[string]string{mainB.ID: subB.ID}, eng.ActiveSubDecks())

	ev, _ = rec.last(domain.EventSubDeckSwitched).(domain.SubDeckSwitched)
	assert.Equal(t, mainA.ID, ev.MainDeckID)
	assert.Empty(t, ev.SubDeckID)
}

func TestEngine_GridFollowsActiveSubDeck(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	main, _ := eng.CreateDeck(ctx, domain.DeckOptions{Rows: 2, Columns: 2})
	sub, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: main.ID})
	require.True(t, eng.UpdateDeck(ctx, main.ID, domain.DeckPatch{Rows: ptr(3)}))
	got, _ := eng.Deck(sub.ID)
	assert.Equal(t, 3, got.Rows)

	h := eng.CreateHotkey(ctx, domain.HotkeyOptions{DeckID: main.ID, Position: &domain.Position{Row: 0, Col: 0}})

	grid, ok := eng.Grid(main.ID)
	require.True(t, ok)
	require.NotNil(t, grid.At(domain.Position{}))
	assert.Equal(t, h.ID, grid.At(domain.Position{}).ID)

	require.True(t, eng.SwitchToSubDeck(ctx, main.ID, sub.ID))
	grid, ok = eng.Grid(main.ID)
	require.True(t, ok)
	assert.Equal(t, sub.ID, grid.Deck.ID)
	assert.Len(t, grid.Slots, 3)
	assert.Nil(t, grid.At(domain.Position{}), "sub-deck slot is empty")

	onMain := eng.HotkeysByDeck(main.ID)
	require.Len(t, onMain, 1)
	assert.Equal(t, h.ID, onMain[0].ID)
	assert.Equal(t, &domain.Position{}, onMain[0].Position)

	active, ok := eng.ActiveDeck(main.ID)
	require.True(t, ok)
	assert.Equal(t, sub.ID, active.ID)

	_, ok = eng.Grid("deck_ghost")
	assert.False(t, ok)
}

func TestEngine_SwitchToDeck(t *testing.T) {
	eng, _, rec := newTestEngine(t)
	ctx := context.Background()
	main, _ := eng.CreateDeck(ctx, domain.DeckOptions{Name: "Main"})
	sub, _ := eng.CreateDeck(ctx, domain.DeckOptions{ParentDeckID: main.ID})

	_, ok := eng.CurrentDeck()
	assert.False(t, ok)
	assert.False(t, eng.SwitchToDeck(ctx, "deck_ghost"))

	t.Run("main deck becomes current", func(t *testing.T) {
		require.True(t, eng.SwitchToDeck(ctx, main.ID))
		ev := rec.last(domain.EventDeckSwitched).(domain.DeckSwitched)
		assert.False(t, ev.AlreadyActive)
		cur, _ := eng.CurrentDeck()
		assert.Equal(t, main.ID, cur.ID)
	})

	t.Run("already active main deck", func(t *testing.T) {
		require.True(t, eng.SwitchToDeck(ctx, main.ID))
		ev := rec.last(domain.EventDeckSwitched).(domain.DeckSwitched)
		assert.True(t, ev.AlreadyActive)
	})

	t.Run("sub-deck activates under parent", func(t *testing.T) {
		require.True(t, eng.SwitchToDeck(ctx, sub.ID))
		active, ok := eng.ActiveSubDeck(main.ID)
		assert.True(t, ok)
		assert.Equal(t, sub.ID, active)
	})

	t.Run("main deck showing a sub-deck reverts", func(t *testing.T) {
		require.True(t, eng.SwitchToDeck(ctx, main.ID))
		_, ok := eng.ActiveSubDeck(main.ID)
		assert.False(t, ok)
		ev := rec.last(domain.EventDeckSwitched).(domain.DeckSwitched)
		assert.False(t, ev.AlreadyActive)
	})

	assert.Equal(t, "Main", eng.Stats().CurrentDeck)
}
