// Package cmd implements the CLI application to compute rebalancing plans.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists every subcommand of the rebal tool.
var Commands = []subcommands.Command{
	&balancesCmd{},
	&allocationCmd{},
	&planCmd{},
	&checkCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "config.yaml", "Path to the YAML configuration file")
var balancesPath = flag.String("balances", "balances.csv", "Path to the balance CSV export; a sibling *_local.csv override is preferred when present")

func loadConfig() (*rebalance.Config, error) {
	return rebalance.LoadConfig(*configPath)
}

func loadBalances(cfg *rebalance.Config) (map[string]decimal.Decimal, error) {
	path, err := rebalance.ResolveBalanceFile(*balancesPath)
	if err != nil {
		return nil, err
	}
	return rebalance.LoadBalances(path, cfg)
}

// loadReport loads config and balances and computes the current state.
func loadReport() (*rebalance.Report, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	balances, err := loadBalances(cfg)
	if err != nil {
		return nil, err
	}
	return rebalance.NewReport(cfg, balances), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
