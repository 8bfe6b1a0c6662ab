package perf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a display type for fractional returns. The calculation functions
// all work on decimal fractions (0.05 means 5%); Percent exists only to render
// them.
type Percent float64

// AsPercent converts a decimal fraction into a Percent.
func AsPercent(fraction decimal.Decimal) Percent {
	return Percent(fraction.InexactFloat64() * 100)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
