package rebalance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrZeroTotalBalance reports that an allocation is undefined because the
// balance it would be a fraction of is zero. Callers are expected to render
// the allocation as "n/a" rather than fail the whole run.
var ErrZeroTotalBalance = errors.New("total balance is zero, allocation is undefined")

// Aggregate sums per-security balances into category totals.
//
// Every configured category gets an entry, zero when none of its symbols has
// a balance. A symbol absent from balances contributes zero. A symbol listed
// under several categories is counted once per membership.
func Aggregate(balances map[string]decimal.Decimal, categories map[string][]string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(categories))
	for category, symbols := range categories {
		total := decimal.Zero
		for _, symbol := range symbols {
			total = total.Add(balances[symbol])
		}
		totals[category] = total
	}
	return totals
}

// Analyze computes each category's fraction of the grand total.
// It returns ErrZeroTotalBalance when the grand total is zero.
func Analyze(totals map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	grand := Sum(totals)
	if grand.IsZero() {
		return nil, ErrZeroTotalBalance
	}
	fractions := make(map[string]decimal.Decimal, len(totals))
	for category, total := range totals {
		fractions[category] = total.Div(grand)
	}
	return fractions, nil
}

// Sum adds up all values of a balance mapping.
func Sum(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}
