// Package format renders monetary amounts for display.
package format

import (
	"math"

	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// indianEnglish groups the last three digits then pairs (12,34,567.89).
var indianEnglish = language.MustParse("en-IN")

// NewPrinter returns a printer whose number formatting follows the given
// digit grouping style. Unknown styles group in thousands.
func NewPrinter(style string) *message.Printer {
	if style == constants.GroupingIndian {
		return message.NewPrinter(indianEnglish)
	}
	return message.NewPrinter(language.English)
}

// Currency returns amount rounded to cents and grouped by p, prefixed with
// symbol (e.g., "-₹12,34,567.89"). Amounts that round to zero never carry a
// sign.
func Currency(p *message.Printer, amount float64, symbol string) string {
	rounded := mathutil.Round(amount)
	formatted := p.Sprintf("%.2f", math.Abs(rounded))
	if rounded < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}
