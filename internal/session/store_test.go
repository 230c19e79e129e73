package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/storage"
)

func TestStoreTokenLifecycle(t *testing.T) {
	store := NewStore(storage.NewMemStore())

	assert.Empty(t, store.Token(), "fresh store starts logged out")

	require.NoError(t, store.SetToken("tok-abc"))
	assert.Equal(t, "tok-abc", store.Token())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}

func TestStoreProfileCache(t *testing.T) {
	store := NewStore(storage.NewMemStore())

	_, ok := store.CachedProfile()
	assert.False(t, ok)

	require.NoError(t, store.SetProfile(&api.Profile{ID: 1, Name: "Ana", Email: "ana@example.com"}))

	cached, ok := store.CachedProfile()
	require.True(t, ok)
	assert.Equal(t, "Ana", cached.Name)

	require.NoError(t, store.Clear())
	_, ok = store.CachedProfile()
	assert.False(t, ok, "clear removes the cached profile too")
}

func TestStoreCorruptProfileCache(t *testing.T) {
	kv := storage.NewMemStore()
	require.NoError(t, kv.Set("profile", []byte("{corrupt")))

	store := NewStore(kv)
	_, ok := store.CachedProfile()
	assert.False(t, ok, "corrupt cache entries are treated as absent")
}

func TestProfileDisplayName(t *testing.T) {
	withName := &api.Profile{Name: "Ana", Email: "ana@example.com"}
	assert.Equal(t, "Ana", withName.DisplayName())

	emailOnly := &api.Profile{Email: "ana@example.com"}
	assert.Equal(t, "ana@example.com", emailOnly.DisplayName())
}
