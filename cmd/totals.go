package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

// totalsCmd holds the flags for the 'totals' subcommand.
type totalsCmd struct {
	window string
	period string
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display the total balance over time" }
func (*totalsCmd) Usage() string {
	return `dash totals [-w <window>] [-p <period>]

  Displays the total balance of all accounts for each date of the window,
  keeping only the last date of each period.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	windowFlag(f, &c.window)
	f.StringVar(&c.period, "p", "monthly", "Sampling period: daily, weekly, monthly, quarterly or yearly")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := dashboard.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, status := loadOrFail()
	if d == nil {
		return status
	}
	window := dashboard.ParseWindow(c.window)
	totals := dashboard.Sample(d.Totals(c.window), period)
	printMarkdown(renderer.TotalsMarkdown(fmt.Sprintf("Total Balance (%s, %s)", window, period), totals, currency))
	return subcommands.ExitSuccess
}
