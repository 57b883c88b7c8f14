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

// compositionCmd holds the flags for the 'composition' subcommand.
type compositionCmd struct {
	date string
	area string
}

func (*compositionCmd) Name() string { return "composition" }
func (*compositionCmd) Synopsis() string {
	return "display the breakdown of balances by type and account on a date"
}
func (*compositionCmd) Usage() string {
	return `dash composition [-d <date>] [-area <date>]

  Displays the share of each account type and account on a date.
  The -area date takes precedence over -d, and without any the latest date is used.
  Accounts with a zero or negative balance are listed apart.
`
}

func (c *compositionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the composition. See the user manual for supported date formats.")
	f.StringVar(&c.area, "area", "", "Date picked on the per account chart, it takes precedence over -d.")
}

func (c *compositionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var sel dashboard.Selection
	for _, pick := range []struct {
		value string
		dst   *dashboard.Date
	}{{c.date, &sel.Totals}, {c.area, &sel.Area}} {
		if pick.value == "" {
			continue
		}
		on, err := dashboard.ParseDate(pick.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		*pick.dst = on
	}

	d, status := loadOrFail()
	if d == nil {
		return status
	}
	printMarkdown(renderer.CompositionMarkdown(d.SelectedComposition(sel), currency))
	return subcommands.ExitSuccess
}
