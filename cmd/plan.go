package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	amount string
}

func (*planCmd) Name() string { return "plan" }
func (*planCmd) Synopsis() string {
	return "compute how to distribute a new investment across categories"
}
func (*planCmd) Usage() string {
	return `rebal plan [-amount <amount>]

  Computes the recommended distribution of a new cash investment across
  categories, moving the portfolio toward its target allocation. Without
  -amount, prompts for the amount interactively.

Usage Examples:
$ rebal plan -amount 2,000.50
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Investment amount, e.g. 2000 or $1,234.56. Prompted for when omitted.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := loadReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var amount decimal.Decimal
	if c.amount != "" {
		amount, err = rebalance.ParseAmount(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -amount: %v\n", err)
			return subcommands.ExitUsageError
		}
	} else {
		amount, err = promptAmount()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading investment amount: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := report.Invest(amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing the plan: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PlanMarkdown(report))

	return subcommands.ExitSuccess
}

// promptAmount asks for the investment amount. Validation runs inside the
// prompt, so a malformed amount re-prompts instead of aborting the run.
func promptAmount() (decimal.Decimal, error) {
	var raw string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the amount you want to invest").
				Prompt("$ ").
				Validate(func(s string) error {
					_, err := rebalance.ParseAmount(s)
					return err
				}).
				Value(&raw),
		),
	).Run()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return rebalance.ParseAmount(raw)
}
