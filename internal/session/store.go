// Package session owns the persisted bearer token, the non-authoritative
// cached profile, and the remote session guard that classifies the caller
// before a page-equivalent command runs.
package session

import (
	"encoding/json"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/storage"
)

// Storage keys. The profile cache is only a UI hint; the token is the sole
// cross-invocation session state.
const (
	tokenKey   = "auth_token"
	profileKey = "profile"
)

// Store wraps the persisted session state
type Store struct {
	kv storage.Store
}

// NewStore creates a session store on top of the given key-value store
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Token returns the stored bearer token, or empty when logged out.
// Its presence does not guarantee validity; only Guard.Verify does.
func (s *Store) Token() string {
	value, ok, err := s.kv.Get(tokenKey)
	if err != nil || !ok {
		return ""
	}
	return string(value)
}

// SetToken persists the bearer token
func (s *Store) SetToken(token string) error {
	return s.kv.Set(tokenKey, []byte(token))
}

// CachedProfile returns the last-known profile, if one was cached.
// It is a non-authoritative hint for immediate rendering; corrupt cache
// entries are treated as absent.
func (s *Store) CachedProfile() (*api.Profile, bool) {
	value, ok, err := s.kv.Get(profileKey)
	if err != nil || !ok {
		return nil, false
	}

	var profile api.Profile
	if err := json.Unmarshal(value, &profile); err != nil {
		return nil, false
	}
	return &profile, true
}

// SetProfile caches the profile for immediate UI hints
func (s *Store) SetProfile(profile *api.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.kv.Set(profileKey, data)
}

// Clear removes the token and the cached profile
func (s *Store) Clear() error {
	if err := s.kv.Delete(tokenKey); err != nil {
		return err
	}
	return s.kv.Delete(profileKey)
}
