package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/pround"
	"github.com/bjaus/pround/internal/config"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		output   string
		format   string
		portrait bool
	)

	cmd := &cobra.Command{
		Use:   "render CONFIG",
		Short: "Render the table described by a YAML or TOML file",
		Long: `Render reads a table description and prints the bare table, or writes a
complete document (LaTeX) or workbook (excel) when an output file is set.
Flags override the values in the file.`,
		Example: `  pround render table.yaml
  pround render table.yaml -o table.tex --portrait
  pround render table.toml -f excel -o table.xlsx --start 2 --stop 10`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("format") {
				cfg.Format = format
			}
			if fs.Changed("portrait") {
				cfg.Orientation = pround.Landscape.String()
				if portrait {
					cfg.Orientation = pround.Portrait.String()
				}
			}
			if err := applyRowFlags(fs, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			path := cfg.Output
			if fs.Changed("output") {
				path = output
			} else if path != "" && !filepath.IsAbs(path) {
				path = filepath.Join(cfg.Dir, path)
			}
			cfg.Logger = app.log()
			return renderConfig(cmd, cfg, path)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write a complete document to this file instead of printing the table")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (latex, excel)")
	cmd.Flags().BoolVar(&portrait, "portrait", false, "Use a portrait page for LaTeX documents")
	cmd.Flags().Int("start", 0, "First row to include (negative counts from the end)")
	cmd.Flags().Int("stop", 0, "Row to stop before (default: last row)")
	return cmd
}

func applyRowFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	start, hasStart, err := changedInt(fs, "start")
	if err != nil {
		return err
	}
	stop, hasStop, err := changedInt(fs, "stop")
	if err != nil {
		return err
	}
	if !hasStart && !hasStop {
		return nil
	}
	if cfg.Rows == nil {
		cfg.Rows = &config.Rows{}
	}
	if hasStart {
		cfg.Rows.Start = start
	}
	if hasStop {
		cfg.Rows.Stop = &stop
	}
	return nil
}

func renderConfig(cmd *cobra.Command, cfg *config.Config, path string) error {
	tbl, err := cfg.Table()
	if err != nil {
		return err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	if path == "" {
		return tbl.Render(cmd.OutOrStdout(), opts...)
	}
	if err := tbl.WriteFile(path, opts...); err != nil {
		return err
	}
	cfg.Logger.Info("table written", "path", path, "format", tbl.Format(), "columns", len(tbl.Header()), "rows", tbl.Len())
	return nil
}
