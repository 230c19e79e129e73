package session

import (
	"context"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/log"
)

// Classification is the result of resolving the caller's session status
type Classification int

const (
	// Anonymous means no token is stored; no network call was made
	Anonymous Classification = iota
	// Customer means the token resolved to a regular customer
	Customer
	// Admin means the token resolved to an administrator
	Admin
	// Invalid means the token was rejected or the verifier was unreachable
	Invalid
)

// String returns the string representation of the classification
func (c Classification) String() string {
	switch c {
	case Anonymous:
		return "anonymous"
	case Customer:
		return "customer"
	case Admin:
		return "admin"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result carries the classification and, for Customer/Admin, the profile
type Result struct {
	Class   Classification
	Profile *api.Profile
}

// Guard resolves session status against the remote who-am-I endpoint.
// Every page-equivalent command runs its own guard check; nothing is
// shared across invocations beyond the token and the cached profile.
type Guard struct {
	store  *Store
	client *api.Client
	logger *log.Logger
}

// NewGuard creates a Guard over the session store and API client
func NewGuard(store *Store, client *api.Client) *Guard {
	return &Guard{
		store:  store,
		client: client,
		logger: log.DefaultLogger().With("component", "session"),
	}
}

// Verify resolves the current session status.
//   - empty token: Anonymous, without any network call
//   - who-am-I failure (transport or non-success status): Invalid; the
//     stored token and cached profile are cleared
//   - success: Admin when is_admin is set, Customer otherwise; the cached
//     profile is refreshed
func (g *Guard) Verify(ctx context.Context) Result {
	token := g.store.Token()
	if token == "" {
		return Result{Class: Anonymous}
	}

	g.client.SetToken(token)

	profile, err := g.client.Me(ctx)
	if err != nil {
		g.logger.WithError(err).Debug("session verification failed")
		if clearErr := g.store.Clear(); clearErr != nil {
			g.logger.WithError(clearErr).Warn("failed to clear rejected session")
		}
		return Result{Class: Invalid}
	}

	if err := g.store.SetProfile(profile); err != nil {
		g.logger.WithError(err).Warn("failed to cache profile")
	}

	if profile.IsAdmin {
		return Result{Class: Admin, Profile: profile}
	}
	return Result{Class: Customer, Profile: profile}
}

// Require verifies the session and enforces a minimum classification.
// want must be Customer or Admin.
//   - Anonymous: not-logged-in error
//   - Invalid: session-expired error (state already cleared by Verify)
//   - Customer where Admin is required: access-denied error, token intact
func (g *Guard) Require(ctx context.Context, want Classification) (*api.Profile, error) {
	result := g.Verify(ctx)

	switch result.Class {
	case Anonymous:
		return nil, errors.NewNotLoggedInError()
	case Invalid:
		return nil, errors.NewSessionExpiredError()
	case Customer:
		if want == Admin {
			return nil, errors.NewAccessDeniedError()
		}
		return result.Profile, nil
	case Admin:
		return result.Profile, nil
	default:
		return nil, errors.NewNotLoggedInError()
	}
}
