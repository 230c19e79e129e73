// Package tui implements the interactive storefront: a catalog browser
// with search, sort and pagination, a cart drawer, and the checkout
// handoff. Catalog fetches run asynchronously; each carries a sequence
// number so a stale response can never overwrite a newer one.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/cart"
	"github.com/soutech/shopctl/internal/catalog"
	"github.com/soutech/shopctl/internal/checkout"
	"github.com/soutech/shopctl/internal/render"
)

// ViewType represents the current view being displayed
type ViewType int

// View type constants
const (
	// ViewCatalog is the product listing view
	ViewCatalog ViewType = iota
	// ViewCart is the cart drawer
	ViewCart
	// ViewHelp is the help screen
	ViewHelp
)

// Model represents the storefront TUI state
type Model struct {
	// Collaborators
	loader *catalog.Loader
	cart   *cart.Store
	flow   *checkout.Flow
	money  *render.Money
	locale language.Tag

	// Catalog state
	filter     catalog.Filter
	seq        *catalog.Sequencer
	items      []api.Product
	loadFailed bool
	loading    bool
	page       int
	pageSize   int
	cursor     int

	// Cart state
	cartCursor int

	// Checkout state
	checkingOut bool
	checkoutURL string

	// UI state
	currentView ViewType
	searching   bool
	searchInput textinput.Model
	status      string
	lastError   string
	width       int
	height      int
	ready       bool
	quitting    bool

	// Styles
	styles Styles
}

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
	Help     lipgloss.Style
	Key      lipgloss.Style
	KeyDesc  lipgloss.Style
}

// Options bundles the collaborators the storefront needs
type Options struct {
	Loader   *catalog.Loader
	Cart     *cart.Store
	Flow     *checkout.Flow
	Money    *render.Money
	Locale   language.Tag
	PageSize int
}

// NewModel creates the storefront model
func NewModel(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "search products"
	input.CharLimit = 64

	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}

	return Model{
		loader:      opts.Loader,
		cart:        opts.Cart,
		flow:        opts.Flow,
		money:       opts.Money,
		locale:      opts.Locale,
		seq:         &catalog.Sequencer{},
		loading:     true,
		page:        1,
		pageSize:    pageSize,
		currentView: ViewCatalog,
		searchInput: input,
		styles:      DefaultStyles(),
	}
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).  // Purple
			Foreground(lipgloss.Color("230")). // Light yellow
			Bold(true),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		KeyDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
	}
}

// Custom messages for storefront events

// CatalogLoadedMsg carries one resolved catalog fetch. Seq identifies the
// request; stale responses are dropped in Update.
type CatalogLoadedMsg struct {
	Seq    uint64
	Result catalog.Result
}

// CheckoutFinishedMsg carries the outcome of a checkout attempt
type CheckoutFinishedMsg struct {
	Outcome *checkout.Outcome
	Err     error
}

// Init kicks off the first catalog fetch (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCatalog(), textinput.Blink)
}

// fetchCatalog issues an asynchronous catalog load for the current filter
func (m *Model) fetchCatalog() tea.Cmd {
	m.loading = true
	seq := m.seq.Next()
	loader := m.loader
	filter := m.filter
	return func() tea.Msg {
		return CatalogLoadedMsg{Seq: seq, Result: loader.Load(context.Background(), filter)}
	}
}

// startCheckout runs the checkout flow off the UI goroutine
func (m *Model) startCheckout() tea.Cmd {
	m.checkingOut = true
	flow := m.flow
	return func() tea.Msg {
		outcome, err := flow.Run(context.Background())
		return CheckoutFinishedMsg{Outcome: outcome, Err: err}
	}
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case CatalogLoadedMsg:
		if !m.seq.IsLatest(msg.Seq) {
			// A newer request is in flight; this response no longer
			// describes the current filter.
			return m, nil
		}
		m.loading = false
		m.items = msg.Result.Items
		m.loadFailed = msg.Result.Failed
		m.clampPage()
		m.clampCursor()
		return m, nil

	case CheckoutFinishedMsg:
		m.checkingOut = false
		if msg.Err != nil {
			m.lastError = msg.Err.Error()
			return m, nil
		}
		m.checkoutURL = msg.Outcome.CheckoutURL
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch m.currentView {
	case ViewCart:
		return m.handleCartKeys(msg)
	case ViewHelp:
		switch msg.String() {
		case "q", "esc", "?":
			m.currentView = ViewCatalog
		}
		return m, nil
	default:
		return m.handleCatalogKeys(msg)
	}
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.filter.Query = m.searchInput.Value()
		m.page = 1
		m.cursor = 0
		return m, m.fetchCatalog()
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.filter.Query)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.currentView = ViewHelp

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "s":
		m.filter.Sort = nextSortOrder(m.filter.Sort)
		m.items = catalog.Sort(m.items, m.filter.Sort, m.locale)
		m.page = 1
		m.cursor = 0

	case "r":
		return m, m.fetchCatalog()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visibleItems())-1 {
			m.cursor++
		}

	case "left", "h", "p":
		if m.page > 1 {
			m.page--
			m.cursor = 0
		}

	case "right", "l", "n":
		if m.page < catalog.PageCount(len(m.items), m.pageSize) {
			m.page++
			m.cursor = 0
		}

	case "enter", "a":
		if product, ok := m.selectedProduct(); ok {
			if err := m.cart.Add(product, 1); err != nil {
				m.lastError = err.Error()
			} else {
				m.status = "Added " + product.Name + " to cart"
			}
		}

	case "c":
		m.currentView = ViewCart
		m.cartCursor = 0
	}

	return m, nil
}

func (m Model) handleCartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	items := m.cart.Items()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "esc", "c":
		m.currentView = ViewCatalog

	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}

	case "down", "j":
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}

	case "+", "=":
		if item, ok := m.selectedLine(items); ok {
			if err := m.cart.SetQuantity(item.ProductID, item.Quantity+1); err != nil {
				m.lastError = err.Error()
			}
		}

	case "-":
		if item, ok := m.selectedLine(items); ok {
			if err := m.cart.SetQuantity(item.ProductID, item.Quantity-1); err != nil {
				m.lastError = err.Error()
			}
		}

	case "x", "d":
		if item, ok := m.selectedLine(items); ok {
			if err := m.cart.Remove(item.ProductID); err != nil {
				m.lastError = err.Error()
			}
			if m.cartCursor > 0 {
				m.cartCursor--
			}
		}

	case "enter", "C":
		if !m.checkingOut {
			m.lastError = ""
			return m, m.startCheckout()
		}
	}

	return m, nil
}

// visibleItems returns the current catalog page
func (m Model) visibleItems() []api.Product {
	return catalog.Paginate(m.items, m.page, m.pageSize)
}

func (m Model) selectedProduct() (api.Product, bool) {
	visible := m.visibleItems()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return api.Product{}, false
	}
	return visible[m.cursor], true
}

func (m Model) selectedLine(items []cart.LineItem) (cart.LineItem, bool) {
	if m.cartCursor < 0 || m.cartCursor >= len(items) {
		return cart.LineItem{}, false
	}
	return items[m.cartCursor], true
}

func (m *Model) clampPage() {
	if last := catalog.PageCount(len(m.items), m.pageSize); m.page > last {
		m.page = last
	}
	if m.page < 1 {
		m.page = 1
	}
}

func (m *Model) clampCursor() {
	if visible := len(m.visibleItems()); m.cursor >= visible {
		m.cursor = 0
	}
}

// CheckoutURL returns the payment URL once checkout has succeeded.
// The caller prints it after the program exits.
func (m Model) CheckoutURL() string {
	return m.checkoutURL
}

func nextSortOrder(o catalog.SortOrder) catalog.SortOrder {
	switch o {
	case catalog.SortNameAsc:
		return catalog.SortPriceAsc
	case catalog.SortPriceAsc:
		return catalog.SortPriceDesc
	case catalog.SortPriceDesc:
		return catalog.SortNewest
	default:
		return catalog.SortNameAsc
	}
}
