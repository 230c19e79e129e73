package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get("auth_token")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report ok=false")

	require.NoError(t, store.Set("auth_token", []byte(`"abc123"`)))

	value, ok, err := store.Get("auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"abc123"`, string(value))
}

func TestFileStorePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("auth_token", []byte("secret")))

	info, err := os.Stat(filepath.Join(dir, "auth_token.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "state files must be owner-only")
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("cart", []byte("[]")))
	require.NoError(t, store.Delete("cart"))

	_, ok, err := store.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, store.Delete("cart"))
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("cart", []byte("first")))
	require.NoError(t, store.Set("cart", []byte("second")))

	value, ok, err := store.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", string(value))
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	_, ok, err := store.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("cart", []byte("[1]")))

	value, ok, err := store.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[1]", string(value))

	// Mutating the returned slice must not corrupt the stored value.
	value[1] = 'X'
	again, _, err := store.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(again))

	require.NoError(t, store.Delete("cart"))
	_, ok, _ = store.Get("cart")
	assert.False(t, ok)
}
