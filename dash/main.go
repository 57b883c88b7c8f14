// Command dash explores the daily balances of a set of accounts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/dashboard/cmd"
	"github.com/etnz/dashboard/config"
	"github.com/etnz/dashboard/logger"
	"github.com/google/subcommands"
)

func main() {
	// handles shell completion requests, it exits when it is one.
	cmd.Completion().Complete("dash")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	if err := cmd.Register(commander, flag.CommandLine, cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
