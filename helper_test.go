package rebalance

import (
	"testing"

	"github.com/shopspring/decimal"
)

// d is a helper for tests to build an exact decimal from its literal.
func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return v
}

// checkTotals fails the test when got differs from want on any key.
func checkTotals(t *testing.T, name string, got map[string]decimal.Decimal, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %d entries, want %d", name, len(got), len(want))
	}
	for key, raw := range want {
		wantValue := d(t, raw)
		gotValue, ok := got[key]
		if !ok {
			t.Errorf("%s: missing entry %q", name, key)
			continue
		}
		if !gotValue.Equal(wantValue) {
			t.Errorf("%s[%q] = %s, want %s", name, key, gotValue, wantValue)
		}
	}
}
