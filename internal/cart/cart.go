// Package cart implements the locally persisted shopping cart: an ordered
// list of line items keyed by product id, written back synchronously after
// every mutation and rehydrated on the next run.
package cart

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/log"
	"github.com/soutech/shopctl/internal/storage"
)

// storageKey is the fixed key the serialized cart lives under
const storageKey = "cart"

// LineItem is one entry in the cart. The unit price is captured from the
// catalog at add time; the backend re-prices at checkout.
type LineItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// Totals holds the derived cart amounts. Total equals Subtotal: tax,
// shipping, and discounts are entirely the checkout backend's business.
type Totals struct {
	Subtotal float64
	Total    float64
}

// Store is the cart state machine. At most one line item exists per
// product id; insertion order is add order.
type Store struct {
	mu       sync.Mutex
	kv       storage.Store
	items    []LineItem
	onChange []func()
	logger   *log.Logger
}

// NewStore creates a cart store and rehydrates it from persistence.
// A missing or corrupt blob yields an empty cart.
func NewStore(kv storage.Store) *Store {
	s := &Store{
		kv:     kv,
		logger: log.DefaultLogger().With("component", "cart"),
	}
	s.load()
	return s
}

func (s *Store) load() {
	value, ok, err := s.kv.Get(storageKey)
	if err != nil || !ok {
		return
	}
	var items []LineItem
	if err := json.Unmarshal(value, &items); err != nil {
		// Corrupt blob: start over with an empty cart.
		s.logger.Warn("discarding unreadable cart state")
		return
	}
	s.items = items
}

// persist must be called with the lock held
func (s *Store) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.kv.Set(storageKey, data)
}

// notify must be called with the lock released
func (s *Store) notify() {
	for _, fn := range s.onChange {
		fn()
	}
}

// OnChange registers a hook invoked after every persisted mutation.
// Views use it to re-render the cart list and the count badge.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Add puts qty units of product into the cart. If the product is already
// present its quantity is incremented; otherwise a new line is appended.
// Quantities below 1 are treated as 1.
func (s *Store) Add(product api.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			SKU:       product.SKU,
			UnitPrice: product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  qty,
		})
	}
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Remove deletes the line item for productID. Removing an absent product
// leaves the cart contents unchanged.
func (s *Store) Remove(productID int64) error {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// SetQuantity sets the quantity for productID, clamped to a minimum of 1.
// It is a no-op when the product is not in the cart.
func (s *Store) SetQuantity(productID int64, qty int) error {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil
	}
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Clear empties the cart
func (s *Store) Clear() error {
	s.mu.Lock()
	s.items = nil
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Items returns a copy of the line items in insertion order
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the total number of units across all lines (the badge number)
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no line items
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// Totals derives the cart amounts
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subtotal float64
	for _, item := range s.items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return Totals{Subtotal: subtotal, Total: subtotal}
}

// CheckoutItems projects the cart into the checkout payload: product id
// and quantity only, never prices.
func (s *Store) CheckoutItems() []api.CheckoutItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]api.CheckoutItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, api.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return items
}

// ParseQuantity interprets user quantity input: non-numeric values and
// anything below 1 become 1.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
