package tui

import (
	"fmt"
	"strings"

	"github.com/soutech/shopctl/internal/catalog"
)

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if !m.ready {
		return "Loading storefront..."
	}

	if m.quitting {
		return m.renderFarewell()
	}

	switch m.currentView {
	case ViewCart:
		return m.renderCart()
	case ViewHelp:
		return m.renderHelp()
	default:
		return m.renderCatalog()
	}
}

func (m Model) renderCatalog() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Storefront"))
	b.WriteString("  ")
	b.WriteString(m.styles.Badge.Render(fmt.Sprintf("Cart (%d)", m.cart.Count())))
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: " + m.searchInput.View() + "\n\n")
	} else {
		b.WriteString(m.styles.Subtitle.Render(m.filterSummary()) + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted.Render("Loading products...") + "\n")
	case m.loadFailed:
		b.WriteString(m.styles.Error.Render("Failed to load products.") + "\n")
		b.WriteString(m.styles.Muted.Render("Press r to retry.") + "\n")
	default:
		b.WriteString(m.renderProductList())
	}

	if m.status != "" {
		b.WriteString("\n" + m.styles.Success.Render(m.status))
	}
	if m.lastError != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.lastError))
	}

	b.WriteString(m.renderKeyHelp([][2]string{
		{"/", "search"}, {"s", "sort"}, {"←/→", "page"}, {"enter", "add to cart"},
		{"c", "cart"}, {"?", "help"}, {"q", "quit"},
	}))
	return b.String()
}

func (m Model) renderProductList() string {
	visible := m.visibleItems()
	if len(visible) == 0 {
		return m.styles.Muted.Render("No products found.") + "\n"
	}

	var b strings.Builder
	for i, p := range visible {
		line := fmt.Sprintf("%-30s %s", truncate(p.Name, 30), m.money.Format(p.Price))
		if p.Category != "" {
			line += m.styles.Muted.Render("  " + p.Category)
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.styles.Muted.Render(fmt.Sprintf(
		"Page %d of %d", m.page, catalog.PageCount(len(m.items), m.pageSize))))
	return b.String()
}

func (m Model) renderCart() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Your Cart") + "\n")

	items := m.cart.Items()
	if len(items) == 0 {
		b.WriteString(m.styles.Muted.Render("Your cart is empty.") + "\n")
	} else {
		for i, item := range items {
			line := fmt.Sprintf("%-30s %s x%d", truncate(item.Name, 30),
				m.money.Format(item.UnitPrice), item.Quantity)
			if i == m.cartCursor {
				b.WriteString(m.styles.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		totals := m.cart.Totals()
		b.WriteString("\n" + m.styles.Badge.Render("Subtotal: "+m.money.Format(totals.Subtotal)) + "\n")
	}

	if m.checkingOut {
		b.WriteString("\n" + m.styles.Muted.Render("Starting checkout..."))
	}
	if m.lastError != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.lastError))
	}

	b.WriteString(m.renderKeyHelp([][2]string{
		{"+/-", "quantity"}, {"x", "remove"}, {"enter", "checkout"},
		{"esc", "back"}, {"q", "quit"},
	}))
	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Help") + "\n")

	sections := []struct {
		name string
		keys [][2]string
	}{
		{"Catalog", [][2]string{
			{"/", "search products"},
			{"s", "cycle sort order (name, price, newest)"},
			{"← → / h l", "previous / next page"},
			{"↑ ↓ / k j", "move selection"},
			{"enter / a", "add selected product to cart"},
			{"r", "reload the catalog"},
		}},
		{"Cart", [][2]string{
			{"c", "open or close the cart"},
			{"+ / -", "change quantity"},
			{"x / d", "remove the selected line"},
			{"enter", "start checkout"},
		}},
		{"General", [][2]string{
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	for _, section := range sections {
		b.WriteString("\n" + m.styles.Subtitle.Render(section.name) + "\n")
		for _, k := range section.keys {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.styles.Key.Render(fmt.Sprintf("%-12s", k[0])),
				m.styles.KeyDesc.Render(k[1])))
		}
	}

	b.WriteString(m.styles.Help.Render("Press esc to return."))
	return b.String()
}

func (m Model) renderFarewell() string {
	if m.checkoutURL != "" {
		return m.styles.Success.Render("Checkout started!") + "\n" +
			"Complete your payment at:\n  " + m.checkoutURL + "\n"
	}
	return "Bye!\n"
}

func (m Model) renderKeyHelp(keys [][2]string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.Key.Render(k[0])+" "+m.styles.KeyDesc.Render(k[1]))
	}
	return m.styles.Help.Render("\n" + strings.Join(parts, "  "))
}

func (m Model) filterSummary() string {
	parts := []string{"sort: " + m.filter.Sort.String()}
	if m.filter.Query != "" {
		parts = append(parts, "query: "+m.filter.Query)
	}
	if m.filter.Category != "" {
		parts = append(parts, "category: "+m.filter.Category)
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
