package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/dashboard/server"
	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard queries as a json api" }
func (*serveCmd) Usage() string {
	return `dash serve [-port <port>]

  Serves the dashboard json api until interrupted.
  POST /api/reload reads the input files again.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", c.port, "HTTP port to listen on")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	srv, err := server.New(server.Config{Port: c.port, Loader: LoadDashboard, Log: appLog})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() { errs <- srv.Start() }()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			appLog.Error().Err(err).Msg("HTTP server failed")
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			appLog.Error().Err(err).Msg("Server forced to shutdown")
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
