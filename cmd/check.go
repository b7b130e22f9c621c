package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "lint the configuration file" }
func (*checkCmd) Usage() string {
	return `rebal check

  Validates the configuration and reports issues that are legal but
  probably unintended: target fractions not summing to 1, categories with
  no member symbols, and symbols counted by several categories.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	findings := rebalance.Lint(cfg)
	if len(findings) == 0 {
		fmt.Printf("%s: ok\n", *configPath)
		return subcommands.ExitSuccess
	}

	for _, finding := range findings {
		fmt.Printf("%s: %s\n", *configPath, finding)
	}
	return subcommands.ExitFailure
}
