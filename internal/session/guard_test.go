package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soutech/shopctl/internal/api"
	shoperrors "github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/storage"
)

func newGuardAgainst(t *testing.T, handler http.HandlerFunc) (*Guard, *Store, *int64) {
	t.Helper()

	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	store := NewStore(storage.NewMemStore())
	guard := NewGuard(store, api.NewClient(server.URL))
	return guard, store, &calls
}

func TestVerifyAnonymousWithoutNetworkCall(t *testing.T) {
	guard, _, calls := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an empty token")
	})

	result := guard.Verify(context.Background())
	assert.Equal(t, Anonymous, result.Class)
	assert.Nil(t, result.Profile)
	assert.EqualValues(t, 0, atomic.LoadInt64(calls))
}

func TestVerifyCustomer(t *testing.T) {
	guard, store, _ := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(api.Profile{ID: 1, Name: "Ana", Email: "ana@example.com"})
	})
	require.NoError(t, store.SetToken("tok"))

	result := guard.Verify(context.Background())
	assert.Equal(t, Customer, result.Class)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "Ana", result.Profile.Name)

	cached, ok := store.CachedProfile()
	require.True(t, ok, "verification should refresh the profile cache")
	assert.Equal(t, "Ana", cached.Name)
}

func TestVerifyAdmin(t *testing.T) {
	guard, store, _ := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Profile{ID: 2, Name: "Root", IsAdmin: true})
	})
	require.NoError(t, store.SetToken("tok"))

	result := guard.Verify(context.Background())
	assert.Equal(t, Admin, result.Class)
}

func TestVerifyRejectedTokenClearsSession(t *testing.T) {
	guard, store, _ := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	require.NoError(t, store.SetToken("stale"))
	require.NoError(t, store.SetProfile(&api.Profile{ID: 1, Name: "Ana"}))

	result := guard.Verify(context.Background())
	assert.Equal(t, Invalid, result.Class)
	assert.Empty(t, store.Token(), "a 403 must clear the stored token")

	_, ok := store.CachedProfile()
	assert.False(t, ok, "a 403 must clear the cached profile")
}

func TestVerifyNetworkFailureIsInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	store := NewStore(storage.NewMemStore())
	require.NoError(t, store.SetToken("tok"))
	guard := NewGuard(store, api.NewClient(server.URL))

	result := guard.Verify(context.Background())
	assert.Equal(t, Invalid, result.Class)
}

func TestRequireAnonymous(t *testing.T) {
	guard, _, _ := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := guard.Require(context.Background(), Customer)
	require.Error(t, err)

	var shopErr *shoperrors.ShopError
	require.ErrorAs(t, err, &shopErr)
	assert.Equal(t, shoperrors.ErrCodeNotLoggedIn, shopErr.Code)
}

func TestRequireAdminAsCustomerKeepsToken(t *testing.T) {
	guard, store, _ := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Profile{ID: 1, Name: "Ana"})
	})
	require.NoError(t, store.SetToken("tok"))

	_, err := guard.Require(context.Background(), Admin)
	require.Error(t, err)

	var shopErr *shoperrors.ShopError
	require.ErrorAs(t, err, &shopErr)
	assert.Equal(t, shoperrors.ErrCodeAccessDenied, shopErr.Code)
	assert.Equal(t, "tok", store.Token(), "the customer stays logged in")
}

func TestRequireInvalid(t *testing.T) {
	guard, store, _ := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	require.NoError(t, store.SetToken("stale"))

	_, err := guard.Require(context.Background(), Customer)
	require.Error(t, err)

	var shopErr *shoperrors.ShopError
	require.ErrorAs(t, err, &shopErr)
	assert.Equal(t, shoperrors.ErrCodeSessionExpired, shopErr.Code)
	assert.Empty(t, store.Token())
}

func TestRequireAdmin(t *testing.T) {
	guard, store, _ := newGuardAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Profile{ID: 2, Name: "Root", IsAdmin: true})
	})
	require.NoError(t, store.SetToken("tok"))

	profile, err := guard.Require(context.Background(), Admin)
	require.NoError(t, err)
	assert.True(t, profile.IsAdmin)
}

func TestClassificationString(t *testing.T) {
	tests := []struct {
		class    Classification
		expected string
	}{
		{Anonymous, "anonymous"},
		{Customer, "customer"},
		{Admin, "admin"},
		{Invalid, "invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.class.String())
	}
}
