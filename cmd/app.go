// Package cmd implements the CLI application to explore account balances.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/config"
	"github.com/etnz/dashboard/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	balancesFile string
	accountsFile string
	currency     = dashboard.DefaultCurrency()
	appLog       = zerolog.Nop()
)

// Register the subcommands, and the global flags into top, their defaults come from cfg.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
// It fails when cfg names an unknown currency.
func Register(c *subcommands.Commander, top *flag.FlagSet, cfg *config.Config, log zerolog.Logger) error {
	cur, err := dashboard.LookupCurrency(cfg.Currency)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	currency = cur
	appLog = log
	top.StringVar(&balancesFile, "balances", cfg.BalancesFile, "Path to the balances csv file (account,date,balance)")
	top.StringVar(&accountsFile, "accounts", cfg.AccountsFile, "Path to the accounts csv file (account,type)")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&totalsCmd{}, "reports")
	c.Register(&typesCmd{}, "reports")
	c.Register(&compositionCmd{}, "reports")
	c.Register(&accountsCmd{}, "reports")
	c.Register(&balancesCmd{}, "reports")

	c.Register(&serveCmd{port: cfg.Port}, "server")

	c.Register(&topicCmd{}, "help")
	return nil
}

// LoadDashboard reads the balances and accounts files into a Dashboard.
func LoadDashboard() (*dashboard.Dashboard, error) {
	store, err := dashboard.LoadStore(balancesFile, accountsFile)
	if err != nil {
		return nil, err
	}
	return dashboard.New(store, dashboard.WithLogger(logger.Component(appLog, "panel"))), nil
}

// loadOrFail loads the dashboard and reports the error for the command to exit with.
func loadOrFail() (*dashboard.Dashboard, subcommands.ExitStatus) {
	d, err := LoadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balances: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return d, subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// windowUsage documents the -w flag of the reports.
const windowUsage = "Date window: YTD, 1Y, 2Y, 5Y or all. Unknown windows mean all."

func windowFlag(f *flag.FlagSet, w *string) {
	f.StringVar(w, "w", dashboard.All.String(), windowUsage)
}
