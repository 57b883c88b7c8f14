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

// typesCmd holds the flags for the 'types' subcommand.
type typesCmd struct {
	window string
	period string
}

func (*typesCmd) Name() string     { return "types" }
func (*typesCmd) Synopsis() string { return "display the balance of each account type over time" }
func (*typesCmd) Usage() string {
	return `dash types [-w <window>] [-p <period>]

  Displays, for each date of the window, the total balance of each account type.
`
}

func (c *typesCmd) SetFlags(f *flag.FlagSet) {
	windowFlag(f, &c.window)
	f.StringVar(&c.period, "p", "monthly", "Sampling period: daily, weekly, monthly, quarterly or yearly")
}

func (c *typesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := dashboard.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, status := loadOrFail()
	if d == nil {
		return status
	}

	// the dates to display are the ones kept by sampling the totals.
	kept := make(map[dashboard.Date]bool)
	for _, t := range dashboard.Sample(d.Totals(c.window), period) {
		kept[t.Date] = true
	}
	keep := func(on dashboard.Date) bool { return kept[on] }

	title := fmt.Sprintf("Balance by Type (%s, %s)", dashboard.ParseWindow(c.window), period)
	printMarkdown(renderer.TypesMarkdown(title, d.CompositionByType(c.window), d.Panel().Order(), keep, currency))
	return subcommands.ExitSuccess
}
