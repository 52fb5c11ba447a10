package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSettingsStoreContract runs a suite of tests to verify that a SettingsStore
// implementation adheres to the defined interface contract.
func RunSettingsStoreContract(t *testing.T, store SettingsStore) {
	ctx := context.Background()
	suffix := fmt.Sprintf(".contract-%d", time.Now().UnixNano())

	t.Run("Set and Get", func(t *testing.T) {
		key := KeyHotkeys + suffix
		value := []byte(`[{"id":"hk_1","name":"Intro"}]`)

		require.NoError(t, store.Set(ctx, key, value), "Set should not return error")

		got, err := store.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.JSONEq(t, string(value), string(got))
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := KeyDecks + suffix
		require.NoError(t, store.Set(ctx, key, []byte(`[]`)))
		require.NoError(t, store.Set(ctx, key, []byte(`[{"id":"deck_1"}]`)))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"deck_1"}]`, string(got), "last write wins")
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "missing"+suffix)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		key := KeyActiveSubDecks + suffix
		require.NoError(t, store.Set(ctx, key, []byte(`{"deck_1":"deck_2"}`)))

		require.NoError(t, store.Delete(ctx, key), "Delete should not return error")

		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound, "Get after Delete should return ErrKeyNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Deleting a missing key is not an error")
	})

	t.Run("Isolation", func(t *testing.T) {
		key := "isolation" + suffix
		value := []byte(`{"a":1}`)
		require.NoError(t, store.Set(ctx, key, value))
		value[2] = 'b'

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(got), "store must not alias the caller's buffer")
	})
}
