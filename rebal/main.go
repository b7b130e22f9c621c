package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion, a no-op outside of a completion request
	completion().Complete("rebal")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	globals := map[string]complete.Predictor{
		"config":   predict.Files("*.yaml"),
		"balances": predict.Files("*.csv"),
	}
	return &complete.Command{
		Flags: globals,
		Sub: map[string]*complete.Command{
			"balances":   {Flags: globals},
			"allocation": {Flags: globals},
			"check":      {Flags: globals},
			"plan": {
				Flags: map[string]complete.Predictor{
					"config":   predict.Files("*.yaml"),
					"balances": predict.Files("*.csv"),
					"amount":   predict.Something,
				},
			},
			"topic": {
				Args: predict.Set{"readme", "config", "balances", "plan"},
			},
		},
	}
}
