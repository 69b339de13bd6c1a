package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyGlyph prefixes every rendered price. Single-currency site.
const CurrencyGlyph = "₹"

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatMoney renders a whole-unit amount with the currency glyph and
// en-IN digit grouping: 123456 -> "₹ 1,23,456".
func FormatMoney(n float64) string {
	return CurrencyGlyph + " " + enIN.Sprint(number.Decimal(n, number.MaxFractionDigits(2)))
}

// PriceOrDash renders an optional price. Absent renders as an em-dash,
// never "0": zero is a real price and must stay distinguishable.
func PriceOrDash(p *float64) string {
	if p == nil {
		return "—"
	}
	return FormatMoney(*p)
}
