package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/pround/internal/logging"
)

func newRootCmd(app *App) *cobra.Command {
	var (
		debugMode bool
		logFormat string
	)

	rootCmd := &cobra.Command{
		Use:   "pround",
		Short: "Round measurements and typeset them as tables",
		Long: `pround rounds values to the precision of their uncertainty and writes
them as a LaTeX tabular or a spreadsheet.`,
		Version:       app.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(debugMode, app.Stderr, logFormat)
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			app.logger = logger
			return nil
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.Text, "Log format (text, json)")

	rootCmd.AddCommand(newRenderCmd(app))
	rootCmd.AddCommand(newRoundCmd(app))
	rootCmd.AddCommand(newFormatsCmd(app))
	return rootCmd
}
