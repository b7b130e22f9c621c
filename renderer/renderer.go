// Package renderer turns rebalancing reports into markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rebalance"
	md "github.com/nao1215/markdown"
)

// BalancesMarkdown renders the per-security balances and the category
// totals.
func BalancesMarkdown(r *rebalance.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	balancesSection(doc, r)
	totalsSection(doc, r)

	return doc.String()
}

// AllocationMarkdown renders the target vs current allocation.
func AllocationMarkdown(r *rebalance.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	allocationSection(doc, r)

	return doc.String()
}

// PlanMarkdown renders the full report: balances, totals, allocation, and
// the recommended investment distribution.
func PlanMarkdown(r *rebalance.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	balancesSection(doc, r)
	totalsSection(doc, r)
	allocationSection(doc, r)
	planSection(doc, r)

	return doc.String()
}

func balancesSection(doc *md.Markdown, r *rebalance.Report) {
	doc.H1("Balances by Security")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Symbol", "Balance"},
	}
	for _, symbol := range sortedKeys(r.Balances) {
		table.Rows = append(table.Rows, []string{symbol, money(r, r.Balances[symbol])})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(money(r, rebalance.Sum(r.Balances)))})
	doc.Table(table)
}

func totalsSection(doc *md.Markdown, r *rebalance.Report) {
	doc.H1("Balances by Category")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Balance"},
	}
	for _, category := range sortedKeys(r.CategoryTotals) {
		table.Rows = append(table.Rows, []string{category, money(r, r.CategoryTotals[category])})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(money(r, r.TotalBalance()))})
	doc.Table(table)
}

func allocationSection(doc *md.Markdown, r *rebalance.Report) {
	doc.H1("Target vs. Current Allocation")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Target", "Current"},
	}
	for _, category := range sortedKeys(r.TargetAllocation) {
		table.Rows = append(table.Rows, []string{
			category,
			fraction(r.TargetAllocation, category),
			fraction(r.CurrentAllocations, category),
		})
	}
	doc.Table(table)
}

func planSection(doc *md.Markdown, r *rebalance.Report) {
	plan := r.Plan
	if plan == nil {
		return
	}

	doc.H1("Recommended Investment Allocation")
	doc.PlainText(fmt.Sprintf("Investing %s", money(r, plan.Investment)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Invest"},
	}
	for _, category := range sortedKeys(plan.Needed) {
		table.Rows = append(table.Rows, []string{category, money(r, plan.Needed[category])})
	}
	if !plan.Unallocated.IsZero() {
		table.Rows = append(table.Rows, []string{md.Italic("Unallocated"), md.Italic(money(r, plan.Unallocated))})
	}
	doc.Table(table)

	doc.H1("Resulting Allocation After Investment")

	resulting := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Balance", "Allocation"},
	}
	for _, category := range sortedKeys(plan.ResultingTotals) {
		resulting.Rows = append(resulting.Rows, []string{
			category,
			money(r, plan.ResultingTotals[category]),
			fraction(plan.ResultingAllocations, category),
		})
	}
	doc.Table(resulting)
}
