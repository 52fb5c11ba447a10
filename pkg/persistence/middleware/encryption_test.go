package middleware_test

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"io"
	"path/filepath"
	"testing"

	"github.com/aretw0/hotdeck/pkg/adapters/file"
	"github.com/aretw0/hotdeck/pkg/adapters/memory"
	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/persistence/middleware"
	"github.com/aretw0/hotdeck/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, 32)
	_, err := io.ReadFull(rand.Reader, k)
	require.NoError(t, err)
	return k
}

func TestEncryptionMiddleware_Contract(t *testing.T) {
	mw := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	ports.RunSettingsStoreContract(t, mw(memory.NewStore()))
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	secure := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})(underlying)

	secret := []byte(`[{"id":"hk_1","actions":[{"type":"custom","data":{"password":"hunter2"}}]}]`)
	require.NoError(t, secure.Set(ctx, ports.KeyHotkeys, secret))

	stored, err := underlying.Get(ctx, ports.KeyHotkeys)
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "hunter2")
	assert.Contains(t, string(stored), "__encrypted__")

	got, err := secure.Get(ctx, ports.KeyHotkeys)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestEncryptionMiddleware_OverFileStore(t *testing.T) {
	ctx := context.Background()
	store := middleware.Chain(
		file.New(filepath.Join(t.TempDir(), "settings.json")),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)}),
	)
	require.NoError(t, store.Set(ctx, ports.KeyDecks, []byte(`[]`)))
	got, err := store.Get(ctx, ports.KeyDecks)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	oldKey := generateKey(t)
	newKey := generateKey(t)

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})(underlying)
	require.NoError(t, oldStore.Set(ctx, ports.KeyDecks, []byte(`"old"`)))

	newStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})(underlying)

	got, err := newStore.Get(ctx, ports.KeyDecks)
	require.NoError(t, err, "fallback key decrypts old data")
	assert.Equal(t, `"old"`, string(got))

	require.NoError(t, newStore.Set(ctx, ports.KeyDecks, []byte(`"new"`)))
	_, err = oldStore.Get(ctx, ports.KeyDecks)
	assert.Error(t, err, "old key alone cannot read data written with the new key")
}

func TestEncryptionMiddleware_PlainValueRejected(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	require.NoError(t, underlying.Set(ctx, ports.KeyHotkeys, []byte(`[]`)))

	secure := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})(underlying)
	_, err := secure.Get(ctx, ports.KeyHotkeys)
	assert.ErrorIs(t, err, middleware.ErrNotEncrypted)

	_, err = secure.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestEncryptionMiddleware_InvalidKey(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short-key")})
	})
}

func TestParseKey(t *testing.T) {
	key := generateKey(t)

	got, err := middleware.ParseKey(hex.EncodeToString(key))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	got, err = middleware.ParseKey(base64.StdEncoding.EncodeToString(key))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = middleware.ParseKey("deadbeef")
	assert.Error(t, err)
}
