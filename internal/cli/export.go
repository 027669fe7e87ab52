package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"archstyles/internal/export"
	"archstyles/internal/styles"
)

func (c *CLI) exportCommand() *cobra.Command {
	var (
		out   string
		base  string
		quiet bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole site as static HTML",
		Long:  `Export renders every page, including one page per selectable feature, so the site works from any static file host.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Export.Dir
			}
			if !cmd.Flags().Changed("base") {
				base = cfg.Export.Base
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			report, err := export.Site(ctx, out, styles.Default(), export.Options{
				Base:   base,
				Logger: logger,
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			prog.done("Rendered site")

			w := cmd.OutOrStdout()
			printSuccess(w, "Exported %d files to %s", len(report.Files), out)
			if !quiet {
				for _, f := range report.Files {
					printFile(w, f)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringVar(&base, "base", "", "URL path prefix the site is served under")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not list written files")
	return cmd
}
