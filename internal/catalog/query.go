// Package catalog implements the catalog query: text/category filtering is
// delegated to the backend, while sorting and pagination are applied
// client-side over the fetched result set.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/log"
)

// DefaultPageSize is the storefront page size
const DefaultPageSize = 8

// SortOrder is one of the four recognized catalog orderings
type SortOrder int

const (
	// SortNameAsc orders by name ascending with locale-aware comparison (default)
	SortNameAsc SortOrder = iota
	// SortPriceAsc orders by price ascending
	SortPriceAsc
	// SortPriceDesc orders by price descending
	SortPriceDesc
	// SortNewest orders by creation timestamp descending
	SortNewest
)

// String returns the flag value for the order
func (o SortOrder) String() string {
	switch o {
	case SortPriceAsc:
		return "price-asc"
	case SortPriceDesc:
		return "price-desc"
	case SortNewest:
		return "newest"
	default:
		return "name-asc"
	}
}

// ParseSortOrder parses a sort flag value
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "name-asc":
		return SortNameAsc, nil
	case "price-asc":
		return SortPriceAsc, nil
	case "price-desc":
		return SortPriceDesc, nil
	case "newest":
		return SortNewest, nil
	default:
		return SortNameAsc, fmt.Errorf("unknown sort order: %s (supported: name-asc, price-asc, price-desc, newest)", s)
	}
}

// Filter is the catalog filter state. Query and Category travel to the
// backend as query parameters; Sort is applied client-side.
type Filter struct {
	Query    string
	Category string
	Sort     SortOrder
}

// Sort returns a sorted copy of items. Name comparison is locale-aware
// under tag; ties keep the fetched order.
func Sort(items []api.Product, order SortOrder, tag language.Tag) []api.Product {
	sorted := make([]api.Product, len(items))
	copy(sorted, items)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	default:
		coll := collate.New(tag)
		sort.SliceStable(sorted, func(i, j int) bool {
			return coll.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}

	return sorted
}

// Paginate slices out one page (1-based). Pages past the end come back
// empty; keeping page within [1, PageCount] is the caller's job.
func Paginate(items []api.Product, page, pageSize int) []api.Product {
	if pageSize < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns the number of pages needed for total items.
// An empty result set still renders one (empty) page.
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Result is one resolved catalog query. Failed marks a fetch or decode
// error: the view shows a "failed to load" state instead of items.
type Result struct {
	Items  []api.Product
	Failed bool
}

// Loader fetches and orders the catalog for a view
type Loader struct {
	client *api.Client
	locale language.Tag
	logger *log.Logger
}

// NewLoader creates a catalog loader. locale drives name collation.
func NewLoader(client *api.Client, locale language.Tag) *Loader {
	return &Loader{
		client: client,
		locale: locale,
		logger: log.DefaultLogger().With("component", "catalog"),
	}
}

// Load fetches the filtered catalog and sorts it. Any failure yields an
// empty, Failed result rather than an error: the catalog view degrades,
// it never aborts.
func (l *Loader) Load(ctx context.Context, filter Filter) Result {
	items, err := l.client.ListProducts(ctx, filter.Query, filter.Category)
	if err != nil {
		l.logger.WithError(err).Warn("catalog fetch failed")
		return Result{Failed: true}
	}
	return Result{Items: Sort(items, filter.Sort, l.locale)}
}
