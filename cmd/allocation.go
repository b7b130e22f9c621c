package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// allocationCmd holds the flags for the 'allocation' subcommand.
type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "compare current allocation to the target" }
func (*allocationCmd) Usage() string {
	return `rebal allocation

  Displays each category's target allocation next to its current share of
  the portfolio. On an empty portfolio the current share is undefined and
  shown as n/a.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := loadReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AllocationMarkdown(report))

	return subcommands.ExitSuccess
}
