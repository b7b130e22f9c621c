package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a display-edge percentage. The fraction it is built from stays
// an exact decimal; the float conversion happens only when formatting.
type Percent float64

// NewPercent converts an allocation fraction (0.25) to a Percent (25%).
func NewPercent(fraction decimal.Decimal) Percent {
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
