// Package commands implements the CLI commands for bundler.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bundler/internal/app"
	"go.trai.ch/bundler/internal/build"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for bundler.
type CLI struct {
	app     Application
	logs    LogFormatter
	rootCmd *cobra.Command
}

// LogFormatter is implemented by loggers that can switch to JSON output.
type LogFormatter interface {
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogFormatter lets --log-format switch the given logger.
func WithLogFormatter(f LogFormatter) Option {
	return func(c *CLI) {
		c.logs = f
	}
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) domain.Outcome
	Plan(ctx context.Context, opts app.PlanOptions) (domain.CommandSpec, error)
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	c := &CLI{app: a}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:           "bundler",
		Short:         "Bundle the application into a standalone executable for this platform",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runBuild,
	}
	rootCmd.PersistentPreRunE = c.applyLogFormat

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "",
		fmt.Sprintf("Project file (default %s if present, otherwise built-in defaults)", domain.ProjectFileName))
	rootCmd.PersistentFlags().StringP("output-mode", "o", "auto", "Output mode: auto, rich, or linear")
	rootCmd.PersistentFlags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	rootCmd.PersistentFlags().String("log-format", "pretty", "Diagnostics format on stderr: pretty or json")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// runBuild is shared by the root command and the build subcommand.
func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	outcome := c.app.Build(cmd.Context(), app.BuildOptions{
		ConfigPath: configPath(cmd),
		OutputMode: outputMode(cmd),
	})
	if outcome.ExitStatus() != 0 {
		// The outcome has been reported; main only needs the exit status.
		return errors.Join(domain.ErrBuildFailed, outcome.Err)
	}
	return nil
}

func (c *CLI) applyLogFormat(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case "", "pretty":
		return nil
	case "json":
		if c.logs != nil {
			c.logs.SetJSON(true)
		}
		return nil
	default:
		return zerr.With(domain.ErrUnknownLogFormat, "log_format", format)
	}
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

func outputMode(cmd *cobra.Command) string {
	if ci, _ := cmd.Flags().GetBool("ci"); ci {
		return "linear"
	}
	mode, _ := cmd.Flags().GetString("output-mode")
	return mode
}
