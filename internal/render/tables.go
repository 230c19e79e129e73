// Package render turns API and cart data into terminal output. Structured
// formats (json, yaml) pass the raw data through a Formatter; the text
// views here produce aligned tables the way a shell user expects.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/cart"
)

// ProductTable renders a page of products as an aligned table.
type ProductTable struct {
	Items []api.Product
	Money *Money
	// Page and PageCount annotate the footer; both zero hides it.
	Page      int
	PageCount int
}

func (t ProductTable) String() string {
	if len(t.Items) == 0 {
		return "No products found."
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKU\tCATEGORY\tPRICE\tACTIVE") //nolint:errcheck
	fmt.Fprintln(w, "--\t----\t---\t--------\t-----\t------") //nolint:errcheck

	for _, p := range t.Items {
		active := "no"
		if p.Active {
			active = "yes"
		}

		category := p.Category
		if category == "" {
			category = "-"
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", //nolint:errcheck
			p.ID, p.Name, p.SKU, category, t.Money.Format(p.Price), active)
	}
	w.Flush() //nolint:errcheck

	if t.PageCount > 0 {
		fmt.Fprintf(&b, "\nPage %d of %d", t.Page, t.PageCount) //nolint:errcheck
	}
	return b.String()
}

// UserTable renders admin user listings.
type UserTable struct {
	Users []api.Profile
}

func (t UserTable) String() string {
	if len(t.Users) == 0 {
		return "No users found."
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tADMIN\tCREATED")  //nolint:errcheck
	fmt.Fprintln(w, "--\t----\t-----\t-----\t-------") //nolint:errcheck

	for _, u := range t.Users {
		admin := "no"
		if u.IsAdmin {
			admin = "yes"
		}
		created := "-"
		if !u.CreatedAt.IsZero() {
			created = u.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, admin, created) //nolint:errcheck
	}
	w.Flush() //nolint:errcheck
	return strings.TrimRight(b.String(), "\n")
}

// CartView renders the local cart with line totals and the subtotal.
type CartView struct {
	Items  []cart.LineItem
	Totals cart.Totals
	Money  *Money
}

func (v CartView) String() string {
	if len(v.Items) == 0 {
		return "Your cart is empty."
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKU\tUNIT PRICE\tQTY\tLINE TOTAL")  //nolint:errcheck
	fmt.Fprintln(w, "--\t----\t---\t----------\t---\t----------") //nolint:errcheck

	for _, item := range v.Items {
		line := item.UnitPrice * float64(item.Quantity)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", //nolint:errcheck
			item.ProductID, item.Name, item.SKU,
			v.Money.Format(item.UnitPrice), item.Quantity, v.Money.Format(line))
	}
	w.Flush() //nolint:errcheck

	fmt.Fprintf(&b, "\nSubtotal: %s\nTotal:    %s", //nolint:errcheck
		v.Money.Format(v.Totals.Subtotal), v.Money.Format(v.Totals.Total))
	return b.String()
}

// OrderList renders a customer's order history, newest as returned by the
// backend.
type OrderList struct {
	Orders []api.Order
	Money  *Money
}

func (l OrderList) String() string {
	if len(l.Orders) == 0 {
		return "No orders yet."
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSTATUS\tTOTAL\tPLACED\tITEMS") //nolint:errcheck
	fmt.Fprintln(w, "-----\t------\t-----\t------\t-----") //nolint:errcheck

	for _, o := range l.Orders {
		placed := "-"
		if !o.CreatedAt.IsZero() {
			placed = o.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\n", //nolint:errcheck
			o.ID, o.Status, l.Money.Format(o.TotalAmount), placed, flattenItems(o.Items))
	}
	w.Flush() //nolint:errcheck
	return strings.TrimRight(b.String(), "\n")
}

// flattenItems renders order lines as "2x Widget, 1x Gadget"
func flattenItems(items []api.OrderItem) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}
	return strings.Join(parts, ", ")
}

// ProfileView renders the account page.
type ProfileView struct {
	Profile *api.Profile
}

func (v ProfileView) String() string {
	p := v.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "Name:   %s\n", p.Name)  //nolint:errcheck
	fmt.Fprintf(&b, "Email:  %s\n", p.Email) //nolint:errcheck
	role := "customer"
	if p.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(&b, "Role:   %s", role) //nolint:errcheck

	if p.DocNumber != "" {
		fmt.Fprintf(&b, "\n%s:    %s", strings.ToUpper(p.DocType), p.DocNumber) //nolint:errcheck
	}
	if p.Phone != "" {
		fmt.Fprintf(&b, "\nPhone:  %s", p.Phone) //nolint:errcheck
	}
	if addr := v.address(); addr != "" {
		fmt.Fprintf(&b, "\nAddress: %s", addr) //nolint:errcheck
	}
	return b.String()
}

func (v ProfileView) address() string {
	p := v.Profile
	if p.Address == "" {
		return ""
	}
	parts := []string{p.Address}
	if p.Number != "" {
		parts[0] += ", " + p.Number
	}
	if p.Complement != "" {
		parts = append(parts, p.Complement)
	}
	if p.District != "" {
		parts = append(parts, p.District)
	}
	if p.City != "" {
		city := p.City
		if p.State != "" {
			city += "/" + p.State
		}
		parts = append(parts, city)
	}
	if p.CEP != "" {
		parts = append(parts, "CEP "+p.CEP)
	}
	return strings.Join(parts, " - ")
}
