// Package rebalance computes portfolio rebalancing recommendations from a
// brokerage balance export and a target category allocation.
//
// The core is three pure operations over decimal amounts:
//   - Aggregate: sum per-security balances into user-defined categories.
//   - Analyze: compute each category's fraction of the total balance.
//   - Distribute: given a new cash investment, compute how much to add to
//     each category to move the portfolio toward its target allocation,
//     proportionally capping the distribution when the total shortfall
//     exceeds the investment.
//
// Everything is recomputed from the two input mappings on each run; nothing
// persists between runs. All monetary arithmetic is exact decimal, never
// binary floating point.
//
// This package serves as the foundational logic for the `rebal` command-line
// tool.
package rebalance
