// Package commands implements the CLI commands for pyprune.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pyprune/internal/app"
	"go.trai.ch/pyprune/internal/build"
	"go.trai.ch/pyprune/internal/core/domain"
)

// CLI represents the command line interface for pyprune.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	setJSON func(bool)

	configPath string
	logJSON    bool
}

// Application represents the application logic interface.
type Application interface {
	Clean(ctx context.Context, opts app.CleanOptions) error
	Report(ctx context.Context, opts app.ReportOptions) error
}

// Option configures the CLI.
type Option func(*CLI)

// WithJSONLogging registers the function toggling JSON log output for --log-json.
func WithJSONLogging(setJSON func(bool)) Option {
	return func(c *CLI) {
		c.setJSON = setJSON
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	c := &CLI{app: a}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:   "pyprune",
		Short: "Inspect and prune packages from a Python environment",
		Long: "pyprune lists the packages installed in a Python environment and removes\n" +
			"everything except a protected set of toolchain and platform packages.",
		Example: "  pyprune --global --info\n" +
			"  pyprune --local --dry-run\n" +
			"  pyprune --local\n" +
			"  pyprune --global --confirm",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if c.setJSON != nil {
				c.setJSON(c.logJSON)
			}
		},
		RunE: c.runClean,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.Bool("local", false, "Target the active virtual environment")
	flags.Bool("global", false, "Target the global interpreter (refused while a virtual environment is active)")
	flags.Bool("info", false, "Only show package counts")
	flags.Bool("dry-run", false, "Show what would be removed without removing anything")
	flags.Bool("confirm", false, "Remove without asking for confirmation")
	rootCmd.MarkFlagsMutuallyExclusive("local", "global")
	rootCmd.MarkFlagsMutuallyExclusive("info", "dry-run", "confirm")

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&c.configPath, "config", "c", "", "Path to the configuration file (default: nearest "+
		domain.ConfigFileName+")")
	persistent.BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newEnvCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runClean(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	local, _ := flags.GetBool("local")
	global, _ := flags.GetBool("global")
	info, _ := flags.GetBool("info")
	dryRun, _ := flags.GetBool("dry-run")
	confirm, _ := flags.GetBool("confirm")

	opts := app.CleanOptions{
		ConfigPath: c.configPath,
		Target:     domain.TargetNone,
		Mode:       domain.ModeInteractive,
	}

	switch {
	case local:
		opts.Target = domain.TargetLocal
	case global:
		opts.Target = domain.TargetGlobal
	}

	switch {
	case info:
		opts.Mode = domain.ModeInfo
	case dryRun:
		opts.Mode = domain.ModeDryRun
	case confirm:
		opts.Mode = domain.ModeConfirmed
	}

	return c.app.Clean(cmd.Context(), opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
