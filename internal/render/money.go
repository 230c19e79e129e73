package render

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats amounts for display in a fixed locale and currency.
// The zero value is unusable; use NewMoney.
type Money struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewMoney builds a formatter for the given locale and ISO 4217 currency
// code. An unknown code falls back to BRL, matching the storefront's
// default market.
func NewMoney(tag language.Tag, code string) *Money {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.BRL
	}
	return &Money{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// Format renders an amount with the currency symbol and locale-appropriate
// separators, e.g. "R$ 1.234,56" under pt-BR.
func (m *Money) Format(amount float64) string {
	return m.printer.Sprint(currency.Symbol(m.unit.Amount(amount)))
}
