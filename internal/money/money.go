// Package money formats banking API amounts for display.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FromCents converts an amount in minor units (cents) to a decimal in major units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders cents as en-US dollars with two decimal places and
// thousands separators: 123456 -> "$1,234.56", -50 -> "-$0.50".
func FormatCents(cents int64) string {
	return Format(FromCents(cents))
}

// Format renders a dollar amount rounded to cents.
func Format(amount decimal.Decimal) string {
	amount = amount.Round(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	abs := amount.Abs()
	whole := abs.Truncate(0)
	frac := abs.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", whole.IntPart()), frac)
}
