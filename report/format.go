package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// Currency formats v as whole dollars with thousands separators:
// -1234567.5 becomes "-$1,234,568".
func Currency(v float64) string {
	d := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + numberPrinter.Sprintf("%d", d.IntPart())
}

// Percent formats a value that is already in percentage points.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

// Ratio formats multiples and coverage ratios, e.g. "5.56x".
func Ratio(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "x"
}

func Years(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1) + " years"
}
