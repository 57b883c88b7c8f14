package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts and their type" }
func (*accountsCmd) Usage() string {
	return `dash accounts

  Lists the typed accounts, and the accounts ignored because they have no type.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, status := loadOrFail()
	if d == nil {
		return status
	}
	p := d.Panel()
	printMarkdown(renderer.AccountsMarkdown(p.AccountNames(), p.Dropped()))
	return subcommands.ExitSuccess
}
