package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pyprune/internal/app"
	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newEnvCmd() *cobra.Command {
	var sample int

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Report the interpreter, package manager and installed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sample < 0 {
				return zerr.With(domain.ErrInvalidSampleSize, "sample", sample)
			}

			return c.app.Report(cmd.Context(), app.ReportOptions{
				ConfigPath: c.configPath,
				Sample:     sample,
			})
		},
	}

	cmd.Flags().IntVarP(&sample, "sample", "n", domain.DefaultSampleSize, "Number of packages to list")

	return cmd
}
