package rebalance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Lint reports configuration issues that are legal but probably not what the
// user wants. Hard errors (missing keys, malformed fractions) are rejected
// by LoadConfig instead.
func Lint(cfg *Config) []string {
	var findings []string

	one := decimal.NewFromInt(1)
	sum := Sum(cfg.TargetAllocation)
	if !sum.Equal(one) {
		findings = append(findings, fmt.Sprintf("target allocation fractions sum to %s, expected 1", sum))
	}

	// a symbol claimed by several categories is counted once per membership
	memberships := make(map[string][]string)
	for category, symbols := range cfg.Categories {
		if len(symbols) == 0 {
			findings = append(findings, fmt.Sprintf("category %q has no member symbols", category))
		}
		for _, symbol := range symbols {
			memberships[symbol] = append(memberships[symbol], category)
		}
	}
	for symbol, categories := range memberships {
		if len(categories) > 1 {
			sort.Strings(categories)
			findings = append(findings,
				fmt.Sprintf("symbol %q belongs to categories %s; its balance is counted once per category",
					symbol, strings.Join(categories, ", ")))
		}
	}

	sort.Strings(findings)
	return findings
}
