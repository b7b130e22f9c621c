package rebalance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDistribute_InvestmentMatchesTotalNeed(t *testing.T) {
	// 6000/4000 portfolio with a 50/50 target: a 2000 investment covers the
	// Bonds shortfall exactly and nothing is scaled.
	totals := map[string]decimal.Decimal{
		"Stocks": decimal.NewFromInt(6000),
		"Bonds":  decimal.NewFromInt(4000),
	}
	targets := map[string]decimal.Decimal{
		"Stocks": d(t, "0.5"),
		"Bonds":  d(t, "0.5"),
	}

	plan, err := Distribute(decimal.NewFromInt(2000), totals, targets)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}

	checkTotals(t, "Needed", plan.Needed, map[string]string{"Stocks": "0", "Bonds": "2000"})
	checkTotals(t, "ResultingTotals", plan.ResultingTotals, map[string]string{"Stocks": "6000", "Bonds": "6000"})
	checkTotals(t, "ResultingAllocations", plan.ResultingAllocations, map[string]string{"Stocks": "0.5", "Bonds": "0.5"})
	if !plan.Unallocated.IsZero() {
		t.Errorf("Unallocated = %s, want 0", plan.Unallocated)
	}
}

func TestDistribute_ProportionalCapping(t *testing.T) {
	// A=0, B=900 with a 50/50 target and only 100 to invest: A needs 500,
	// B nothing, so A's need is scaled by 100/500.
	totals := map[string]decimal.Decimal{
		"A": decimal.Zero,
		"B": decimal.NewFromInt(900),
	}
	targets := map[string]decimal.Decimal{
		"A": d(t, "0.5"),
		"B": d(t, "0.5"),
	}

	plan, err := Distribute(decimal.NewFromInt(100), totals, targets)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}

	checkTotals(t, "Needed", plan.Needed, map[string]string{"A": "100", "B": "0"})
	checkTotals(t, "ResultingTotals", plan.ResultingTotals, map[string]string{"A": "100", "B": "900"})
	checkTotals(t, "ResultingAllocations", plan.ResultingAllocations, map[string]string{"A": "0.1", "B": "0.9"})
}

func TestDistribute_CappedSumEqualsInvestment(t *testing.T) {
	// whenever the total need exceeds the investment, the scaled needs must
	// sum back to the investment within rounding epsilon.
	totals := map[string]decimal.Decimal{
		"A": d(t, "10.01"),
		"B": d(t, "333.33"),
		"C": decimal.Zero,
	}
	targets := map[string]decimal.Decimal{
		"A": d(t, "0.4"),
		"B": d(t, "0.35"),
		"C": d(t, "0.25"),
	}
	investment := d(t, "77.77")

	plan, err := Distribute(investment, totals, targets)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}

	epsilon := d(t, "0.000000001")
	if diff := Sum(plan.Needed).Sub(investment).Abs(); diff.GreaterThan(epsilon) {
		t.Errorf("Sum(Needed) = %s, want %s within %s", Sum(plan.Needed), investment, epsilon)
	}
	if plan.Unallocated.GreaterThan(epsilon) {
		t.Errorf("Unallocated = %s, want at most rounding noise when needs are capped", plan.Unallocated)
	}
}

func TestDistribute_ExcessInvestmentStaysUnallocated(t *testing.T) {
	// When the total need is below the investment (possible when fractions
	// sum to less than 1), needs stay unscaled and the remainder is never
	// distributed. New total is 1300, desired 520/520, so Stocks needs 120,
	// Bonds nothing, and 180 of the 300 stays unallocated.
	totals := map[string]decimal.Decimal{
		"Stocks": decimal.NewFromInt(400),
		"Bonds":  decimal.NewFromInt(600),
	}
	targets := map[string]decimal.Decimal{
		"Stocks": d(t, "0.4"),
		"Bonds":  d(t, "0.4"),
	}

	plan, err := Distribute(decimal.NewFromInt(300), totals, targets)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}

	checkTotals(t, "Needed", plan.Needed, map[string]string{"Stocks": "120", "Bonds": "0"})
	if want := d(t, "180"); !plan.Unallocated.Equal(want) {
		t.Errorf("Unallocated = %s, want %s", plan.Unallocated, want)
	}
	checkTotals(t, "ResultingTotals", plan.ResultingTotals, map[string]string{"Stocks": "520", "Bonds": "600"})
}

func TestDistribute_ZeroInvestmentIsNoOp(t *testing.T) {
	totals := map[string]decimal.Decimal{
		"Stocks": d(t, "6000.50"),
		"Bonds":  d(t, "3999.50"),
	}
	targets := map[string]decimal.Decimal{
		"Stocks": d(t, "0.7"),
		"Bonds":  d(t, "0.3"),
	}

	plan, err := Distribute(decimal.Zero, totals, targets)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}

	for category, needed := range plan.Needed {
		if !needed.IsZero() {
			t.Errorf("Needed[%q] = %s, want 0", category, needed)
		}
	}
	for category, total := range totals {
		if !plan.ResultingTotals[category].Equal(total) {
			t.Errorf("ResultingTotals[%q] = %s, want unchanged %s", category, plan.ResultingTotals[category], total)
		}
	}
}

func TestDistribute_NegativeInvestment(t *testing.T) {
	_, err := Distribute(decimal.NewFromInt(-1), map[string]decimal.Decimal{}, map[string]decimal.Decimal{})
	if err == nil {
		t.Fatal("Distribute() with a negative amount should fail")
	}
}

func TestDistribute_EmptyPortfolioZeroInvestment(t *testing.T) {
	// both current totals and the investment are zero: resulting allocations
	// are undefined and must be reported as such, not crash.
	totals := map[string]decimal.Decimal{"A": decimal.Zero, "B": decimal.Zero}
	targets := map[string]decimal.Decimal{"A": d(t, "0.5"), "B": d(t, "0.5")}

	plan, err := Distribute(decimal.Zero, totals, targets)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}
	if plan.ResultingAllocations != nil {
		t.Errorf("ResultingAllocations = %v, want nil (undefined)", plan.ResultingAllocations)
	}
}
