// Package cli provides the command-line interface for touchicon.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/touchicon/internal/config"
	"github.com/jmylchreest/touchicon/internal/version"
)

// app carries state shared by all commands of one invocation.
type app struct {
	cfg    config.Config
	logger hclog.Logger

	verbose bool
	quiet   bool
	strict  bool
}

// NewRootCmd builds the touchicon command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "touchicon",
		Short: "Generate 180x180 PNG app icons",
		Long: `touchicon produces the 180x180 PNG icon iOS uses for home screen
shortcuts ("apple-touch-icon").

It can either draw the icon from scratch (a gradient tile with initials,
a pen and a document) or resample an existing logo.

Failures are reported on stdout and, unless --strict is given, the exit
status is still 0.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "exit non-zero when the icon could not be written")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newResizeCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the environment configuration and creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.strict = a.strict || cfg.Strict
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, a.verbose, a.quiet)

	a.logger.Debug("configuration loaded",
		"size", cfg.Size,
		"output", cfg.Output,
		"source", cfg.Source,
		"style", cfg.StyleFile,
		"strict", a.strict,
	)
	return nil
}

// status prints a progress line to stdout unless --quiet was given.
func (a *app) status(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// fail reports a handled failure on stdout. The command still succeeds
// unless strict mode is on.
func (a *app) fail(cmd *cobra.Command, err error, lines ...string) error {
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	a.logger.Debug("command failed", "command", cmd.Name(), "error", err)

	if a.strict {
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
