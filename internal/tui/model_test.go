package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/cart"
	"github.com/soutech/shopctl/internal/catalog"
	"github.com/soutech/shopctl/internal/checkout"
	"github.com/soutech/shopctl/internal/render"
	"github.com/soutech/shopctl/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ptBR := language.MustParse("pt-BR")
	return NewModel(Options{
		Loader:   catalog.NewLoader(api.NewClient("http://127.0.0.1:1"), ptBR),
		Cart:     cart.NewStore(storage.NewMemStore()),
		Money:    render.NewMoney(ptBR, "BRL"),
		Locale:   ptBR,
		PageSize: 2,
	})
}

func loaded(m Model, items ...api.Product) Model {
	msg := CatalogLoadedMsg{Seq: m.seq.Next(), Result: catalog.Result{Items: items}}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(m Model, key string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated.(Model)
}

// TestNewModel tests model initialization
func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.currentView != ViewCatalog {
		t.Errorf("Expected ViewCatalog, got %v", m.currentView)
	}
	if m.page != 1 {
		t.Errorf("Expected page 1, got %d", m.page)
	}
	if m.quitting {
		t.Error("Expected quitting to be false by default")
	}
}

// TestWindowSizeReadiesModel tests window size message handling
func TestWindowSizeReadiesModel(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	if !m.ready {
		t.Error("Expected model to be ready after a window size message")
	}
}

// TestCatalogLoaded tests that a fresh response replaces the item set
func TestCatalogLoaded(t *testing.T) {
	m := newTestModel(t)

	m = loaded(m, api.Product{ID: 1, Name: "Violão"}, api.Product{ID: 2, Name: "Pandeiro"})

	if len(m.items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(m.items))
	}
	if m.loading {
		t.Error("Expected loading to be cleared")
	}
}

// TestStaleResponseDropped tests the last-response-wins rule
func TestStaleResponseDropped(t *testing.T) {
	m := newTestModel(t)

	stale := m.seq.Next()
	fresh := m.seq.Next()

	updated, _ := m.Update(CatalogLoadedMsg{
		Seq:    fresh,
		Result: catalog.Result{Items: []api.Product{{ID: 2, Name: "Fresh"}}},
	})
	m = updated.(Model)

	updated, _ = m.Update(CatalogLoadedMsg{
		Seq:    stale,
		Result: catalog.Result{Items: []api.Product{{ID: 1, Name: "Stale"}}},
	})
	m = updated.(Model)

	if len(m.items) != 1 || m.items[0].Name != "Fresh" {
		t.Errorf("Expected the stale response to be dropped, got %+v", m.items)
	}
}

// TestLoadClampsPage tests that a shrunken result pulls the page back in range
func TestLoadClampsPage(t *testing.T) {
	m := newTestModel(t)
	m.page = 5

	m = loaded(m, api.Product{ID: 1}, api.Product{ID: 2}, api.Product{ID: 3})

	if m.page != 2 {
		t.Errorf("Expected page clamped to 2, got %d", m.page)
	}
}

// TestPagination tests page navigation bounds
func TestPagination(t *testing.T) {
	m := newTestModel(t)
	m = loaded(m, api.Product{ID: 1}, api.Product{ID: 2}, api.Product{ID: 3})

	m = press(m, "n")
	if m.page != 2 {
		t.Errorf("Expected page 2, got %d", m.page)
	}

	m = press(m, "n")
	if m.page != 2 {
		t.Errorf("Expected page to stay at the last page, got %d", m.page)
	}

	m = press(m, "p")
	if m.page != 1 {
		t.Errorf("Expected page 1, got %d", m.page)
	}

	m = press(m, "p")
	if m.page != 1 {
		t.Errorf("Expected page to stay at 1, got %d", m.page)
	}
}

// TestSortCycle tests the sort key cycling through all four orders
func TestSortCycle(t *testing.T) {
	m := newTestModel(t)
	m = loaded(m,
		api.Product{ID: 1, Name: "B", Price: 2},
		api.Product{ID: 2, Name: "A", Price: 1},
	)

	m = press(m, "s")
	if m.filter.Sort != catalog.SortPriceAsc {
		t.Errorf("Expected price-asc after one press, got %v", m.filter.Sort)
	}
	if m.items[0].Price != 1 {
		t.Errorf("Expected items re-sorted by price, got %+v", m.items)
	}

	m = press(m, "s")
	m = press(m, "s")
	m = press(m, "s")
	if m.filter.Sort != catalog.SortNameAsc {
		t.Errorf("Expected the cycle to wrap back to name-asc, got %v", m.filter.Sort)
	}
}

// TestAddToCart tests adding the selected product from the catalog view
func TestAddToCart(t *testing.T) {
	m := newTestModel(t)
	m = loaded(m, api.Product{ID: 1, Name: "Violão", Price: 100})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.cart.Count() != 1 {
		t.Errorf("Expected 1 unit in the cart, got %d", m.cart.Count())
	}
	if !strings.Contains(m.status, "Violão") {
		t.Errorf("Expected a confirmation naming the product, got %q", m.status)
	}
}

// TestCartQuantityKeys tests +/- and removal in the cart view
func TestCartQuantityKeys(t *testing.T) {
	m := newTestModel(t)
	if err := m.cart.Add(api.Product{ID: 1, Name: "Violão", Price: 100}, 2); err != nil {
		t.Fatal(err)
	}
	m = press(m, "c")
	if m.currentView != ViewCart {
		t.Fatalf("Expected cart view, got %v", m.currentView)
	}

	m = press(m, "+")
	if got := m.cart.Items()[0].Quantity; got != 3 {
		t.Errorf("Expected quantity 3, got %d", got)
	}

	m = press(m, "-")
	m = press(m, "-")
	m = press(m, "-")
	if got := m.cart.Items()[0].Quantity; got != 1 {
		t.Errorf("Expected quantity clamped at 1, got %d", got)
	}

	m = press(m, "x")
	if !m.cart.IsEmpty() {
		t.Error("Expected the line to be removed")
	}
}

// TestSearchCommit tests that committing a search resets paging
func TestSearchCommit(t *testing.T) {
	m := newTestModel(t)
	m = loaded(m, api.Product{ID: 1}, api.Product{ID: 2}, api.Product{ID: 3})
	m = press(m, "n")

	m = press(m, "/")
	if !m.searching {
		t.Fatal("Expected search mode after /")
	}

	m = press(m, "guitar")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.searching {
		t.Error("Expected search mode to end on enter")
	}
	if m.filter.Query != "guitar" {
		t.Errorf("Expected query 'guitar', got %q", m.filter.Query)
	}
	if m.page != 1 {
		t.Errorf("Expected paging reset to 1, got %d", m.page)
	}
}

// TestCheckoutFinished tests both outcomes of the checkout message
func TestCheckoutFinished(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(CheckoutFinishedMsg{Err: errFake("cart is empty")})
	m = updated.(Model)
	if cmd != nil {
		t.Error("Expected no follow-up command on checkout failure")
	}
	if m.lastError == "" {
		t.Error("Expected the error to be surfaced")
	}
	if m.quitting {
		t.Error("Expected the TUI to stay open after a failed checkout")
	}

	updated, _ = m.Update(CheckoutFinishedMsg{
		Outcome: &checkout.Outcome{CheckoutURL: "https://pay.example/p/1"},
	})
	m = updated.(Model)
	if !m.quitting {
		t.Error("Expected quit after a successful checkout")
	}
	if m.CheckoutURL() != "https://pay.example/p/1" {
		t.Errorf("Expected the payment URL to be retained, got %q", m.CheckoutURL())
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
