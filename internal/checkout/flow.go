// Package checkout converts the local cart into a backend order and hands
// the resulting payment URL to the user. Pricing is never sent: the
// backend re-prices every line.
package checkout

import (
	"context"
	stderrors "errors"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/cart"
	"github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/log"
	"github.com/soutech/shopctl/internal/session"
)

// Outcome is a successful checkout handoff
type Outcome struct {
	CheckoutURL string
	OrderID     int64
}

// Flow runs the checkout sequence: preconditions, the checkout request,
// and response classification.
type Flow struct {
	cart    *cart.Store
	session *session.Store
	guard   *session.Guard
	client  *api.Client
	logger  *log.Logger
}

// New creates a checkout flow
func New(cartStore *cart.Store, sessionStore *session.Store, guard *session.Guard, client *api.Client) *Flow {
	return &Flow{
		cart:    cartStore,
		session: sessionStore,
		guard:   guard,
		client:  client,
		logger:  log.DefaultLogger().With("component", "checkout"),
	}
}

// Run executes the checkout flow.
//
// Preconditions, checked before any checkout request: the cart must be
// non-empty, and the session is re-verified live via the who-am-I call —
// cached state is never trusted at checkout time.
//
// On success the cart is deliberately NOT cleared: clearing happens
// server-side after payment, outside this client.
func (f *Flow) Run(ctx context.Context) (*Outcome, error) {
	if f.cart.IsEmpty() {
		return nil, errors.NewCartEmptyError()
	}

	if _, err := f.guard.Require(ctx, session.Customer); err != nil {
		return nil, err
	}

	resp, err := f.client.Checkout(ctx, f.cart.CheckoutItems())
	if err != nil {
		if api.IsAuthFailure(err) {
			// The token went stale between the guard check and the
			// checkout call. Treat it like any rejected session.
			if clearErr := f.session.Clear(); clearErr != nil {
				f.logger.WithError(clearErr).Warn("failed to clear rejected session")
			}
			return nil, errors.NewSessionExpiredError()
		}

		var statusErr *api.StatusError
		if stderrors.As(err, &statusErr) {
			return nil, errors.NewAPIStatusError(statusErr.Status, statusErr.Detail)
		}
		return nil, err
	}

	if resp.CheckoutURL == "" {
		return nil, errors.NewCheckoutNoURLError()
	}

	return &Outcome{CheckoutURL: resp.CheckoutURL, OrderID: resp.OrderID}, nil
}
