// Package display implements the rendering contract for amounts and rates:
// rupee-prefixed currency with en-IN digit grouping and percentages that
// only show decimals when the stored value has them.
package display

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Currency formats a whole-rupee amount with the ₹ prefix and Indian digit
// grouping: 12500 -> "₹12,500", 100000 -> "₹1,00,000". Currency amounts
// carry no decimal places.
func Currency(amount int64) string {
	return printer.Sprintf("₹%d", amount)
}

// SignedCurrency renders negative amounts with a leading minus before the
// symbol, as a net-savings figure can legitimately be negative
func SignedCurrency(amount int64) string {
	if amount < 0 {
		return "-" + Currency(-amount)
	}
	return Currency(amount)
}

// Percent formats a cashback rate rounded to two decimal places with
// trailing zeros trimmed: 4 -> "4%", 3.3 -> "3.3%", 3.333 -> "3.33%"
func Percent(rate decimal.Decimal) string {
	rounded := rate.Round(2)
	return strconv.FormatFloat(rounded.InexactFloat64(), 'f', -1, 64) + "%"
}
