package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

// balancesCmd holds the flags for the 'balances' subcommand.
type balancesCmd struct {
	account string
	window  string
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display the daily balances of an account" }
func (*balancesCmd) Usage() string {
	return `dash balances -a <account> [-w <window>]

  Displays the daily balances of an account, telling observed from interpolated days.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name (required)")
	windowFlag(f, &c.window)
}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a flag is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	d, status := loadOrFail()
	if d == nil {
		return status
	}
	series, ok := d.Balances(c.account, c.window)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.account)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BalancesMarkdown(c.account, series, currency))
	return subcommands.ExitSuccess
}
