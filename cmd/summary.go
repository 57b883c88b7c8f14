package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the latest total and per type balances" }
func (*summaryCmd) Usage() string {
	return `dash summary

  Displays the total balance and the balance of each account type on the latest date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, status := loadOrFail()
	if d == nil {
		return status
	}
	printMarkdown(renderer.SummaryMarkdown(d.Summary(), currency))
	return subcommands.ExitSuccess
}
