package renderer

import (
	"sort"

	"github.com/etnz/rebalance"
	"github.com/shopspring/decimal"
)

func money(r *rebalance.Report, v decimal.Decimal) string {
	return rebalance.M(v, r.Currency).String()
}

// fraction formats one category's allocation fraction, or "n/a" when the
// allocation is undefined (zero total balance).
func fraction(fractions map[string]decimal.Decimal, category string) string {
	if fractions == nil {
		return "n/a"
	}
	return rebalance.NewPercent(fractions[category]).String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
