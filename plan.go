package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Plan is the recommended distribution of a new cash investment across
// categories, together with the portfolio state it would produce.
type Plan struct {
	// Investment is the cash amount the plan distributes.
	Investment decimal.Decimal
	// Needed maps each category to the amount to invest in it.
	Needed map[string]decimal.Decimal
	// Unallocated is the part of the investment no category needs.
	// It is zero whenever the total shortfall meets or exceeds the
	// investment.
	Unallocated decimal.Decimal
	// ResultingTotals are the category totals after applying Needed.
	ResultingTotals map[string]decimal.Decimal
	// ResultingAllocations are the allocation fractions after applying
	// Needed. Nil when the resulting total balance is zero (empty portfolio
	// and zero investment), in which case the allocation is undefined.
	ResultingAllocations map[string]decimal.Decimal
}

// Distribute computes how to split a new investment across categories to
// move the portfolio toward its target allocation.
//
// Each category needs max(0, desired-current) where desired is its target
// fraction of the post-investment total. When the needs sum to more than the
// investment, every need is scaled by investment/total so the plan never
// spends more than supplied. When they sum to less, the needs stay unscaled
// and the remainder is reported as Unallocated: the plan never invents
// investment beyond what categories need.
func Distribute(investment decimal.Decimal, totals map[string]decimal.Decimal, targets map[string]decimal.Decimal) (*Plan, error) {
	if investment.IsNegative() {
		return nil, fmt.Errorf("investment amount must not be negative, got %s", investment)
	}

	newTotal := Sum(totals).Add(investment)

	needed := make(map[string]decimal.Decimal, len(targets))
	for category, target := range targets {
		shortfall := newTotal.Mul(target).Sub(totals[category])
		if shortfall.IsNegative() {
			shortfall = decimal.Zero
		}
		needed[category] = shortfall
	}

	totalNeeded := Sum(needed)
	if totalNeeded.GreaterThan(investment) {
		for category, n := range needed {
			needed[category] = investment.Mul(n.Div(totalNeeded))
		}
		totalNeeded = Sum(needed)
	}

	unallocated := investment.Sub(totalNeeded)
	if unallocated.IsNegative() {
		// scaling rounding can overshoot by a negligible epsilon
		unallocated = decimal.Zero
	}

	resulting := make(map[string]decimal.Decimal, len(targets))
	for category := range targets {
		resulting[category] = totals[category].Add(needed[category])
	}

	allocations, err := Analyze(resulting)
	if err != nil {
		// zero resulting balance: the allocation stays undefined
		allocations = nil
	}

	return &Plan{
		Investment:           investment,
		Needed:               needed,
		Unallocated:          unallocated,
		ResultingTotals:      resulting,
		ResultingAllocations: allocations,
	}, nil
}
