package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/recursive_art/pkg/engine"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "latex" | "dot"
	Config  string // optional YAML config file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "latex", "dot"}

// NewRootCommand creates the root command for the recursive-art CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "recursive-art",
		Short:         "Random expression art",
		Long:          "Generates images by evaluating one random expression tree per color channel at every pixel.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|latex|dot)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML config file")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewNoiseCommand(opts))
	cmd.AddCommand(NewPrintCommand(opts))

	return cmd
}

// Execute runs the CLI against os.Args and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// loadConfig returns the --config file on top of the defaults, or the
// defaults alone.
func loadConfig(opts *RootOptions) (engine.Config, error) {
	if opts.Config == "" {
		return engine.DefaultConfig(), nil
	}
	cfg, err := engine.LoadConfig(opts.Config)
	if err != nil {
		return engine.Config{}, WrapExitError(ExitCommandError, "loading config", err)
	}
	return cfg, nil
}

// resolveFormat picks the --format flag when given, else the config's format.
func resolveFormat(cmd *cobra.Command, opts *RootOptions, cfg *engine.Config) {
	if cmd.Flags().Changed("format") || cfg.Format == "" {
		cfg.Format = opts.Format
	}
}

// newEngine validates cfg and builds an engine, mapping config errors to
// ExitCommandError.
func newEngine(cfg engine.Config) (*engine.Engine, error) {
	e, err := engine.New(cfg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configuring engine", err)
	}
	return e, nil
}
