package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/pround"
)

func newRoundCmd(app *App) *cobra.Command {
	var (
		digits int
		format string
	)

	cmd := &cobra.Command{
		Use:   "round VALUE [UNCERTAINTY]",
		Short: "Round a single value, or a value with its uncertainty",
		Example: `  pround round 1.23456789 0.123456789     # 1.23 +- 0.12
  pround round -f latex 9.81 0.05         # \num{9.81 +- 0.05}
  pround round -d 1 42                    # 42.0
  pround round -- -0.5437 0.0231          # negative values after --`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pround.ParseFormat(format)
			if err != nil {
				return err
			}
			nums, err := pround.Floats(args)
			if err != nil {
				return err
			}

			var in pround.Input = pround.Plain{Values: nums, Digits: digits}
			if len(nums) == 2 {
				if cmd.Flags().Changed("digits") {
					return fmt.Errorf("%w: --digits only applies without an uncertainty", errUsage)
				}
				in = pround.Measurements{{Value: nums[0], Uncertainty: nums[1]}}
			}

			tbl, err := pround.New(f, pround.WithLogger(app.log()))
			if err != nil {
				return err
			}
			if err := tbl.AddColumn(args[0], in); err != nil {
				return err
			}
			for _, row := range tbl.Rows(pround.Span{}) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), row[0]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&digits, "digits", "d", pround.DefaultDigits, "Decimals for a value without uncertainty")
	cmd.Flags().StringVarP(&format, "format", "f", pround.Excel.String(), "Cell format (excel for plain text, latex for \\num)")
	return cmd
}

func newFormatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range pround.Formats() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
