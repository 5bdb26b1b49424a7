// Package cmd implements the pround command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Version string

	logger *slog.Logger
}

// NewApp constructs an App writing to the process streams.
func NewApp() *App {
	return &App{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the CLI with the provided args. Errors are printed to Stderr
// and returned so the caller can pick an exit code with [ExitCode].
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.Stderr, "pround: %v\n", err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}

func (a *App) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}
