package rebalance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Report is the full state a single run computes: loaded balances, category
// totals, current allocation, and optionally an investment plan.
type Report struct {
	Currency string
	// Balances are the per-security balances, cash symbol excluded.
	Balances map[string]decimal.Decimal
	// CategoryTotals are the aggregated balances per category.
	CategoryTotals map[string]decimal.Decimal
	// TargetAllocation are the configured target fractions.
	TargetAllocation map[string]decimal.Decimal
	// CurrentAllocations are the current fractions per category. Nil when
	// the portfolio total is zero: the allocation is undefined, not zero.
	CurrentAllocations map[string]decimal.Decimal
	// Plan is set by Invest.
	Plan *Plan
}

// NewReport aggregates balances and analyzes the current allocation.
func NewReport(cfg *Config, balances map[string]decimal.Decimal) *Report {
	totals := Aggregate(balances, cfg.Categories)
	fractions, err := Analyze(totals)
	if errors.Is(err, ErrZeroTotalBalance) {
		fractions = nil
	}
	return &Report{
		Currency:           cfg.Currency,
		Balances:           balances,
		CategoryTotals:     totals,
		TargetAllocation:   cfg.TargetAllocation,
		CurrentAllocations: fractions,
	}
}

// Invest computes the distribution plan for a new investment amount.
func (r *Report) Invest(amount decimal.Decimal) error {
	plan, err := Distribute(amount, r.CategoryTotals, r.TargetAllocation)
	if err != nil {
		return err
	}
	r.Plan = plan
	return nil
}

// TotalBalance is the portfolio total over all categories.
func (r *Report) TotalBalance() decimal.Decimal {
	return Sum(r.CategoryTotals)
}
