package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/recursive_art/pkg/engine"
	"github.com/wildfunctions/recursive_art/pkg/sink"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	expr exprFlags
	Out  string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a random expression image to PNG",
		Long: `Builds one random expression tree per color channel, evaluates them at
every pixel and writes the result as a PNG.

Examples:
  recursive-art render
  recursive-art render --seed 42 --out art/seed42.png
  recursive-art render --pool bounded --gamut clamp --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	opts.expr.register(cmd)
	cmd.Flags().StringVarP(&opts.Out, "out", "o", engine.DefaultConfig().Filename, "output PNG path")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	opts.expr.apply(cmd, &cfg)
	if cmd.Flags().Changed("out") {
		cfg.Filename = opts.Out
	}
	resolveFormat(cmd, opts.RootOptions, &cfg)

	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := renderContext(cmd)
	defer stop()

	trees := e.Build()
	report, err := e.RenderTrees(ctx, trees, sink.NewPNG(cfg.Filename))
	if err != nil {
		return WrapExitError(ExitFailure, "render failed", err)
	}
	return writeOutput(cmd, cfg.Format, report, trees)
}

// writeOutput writes the run report, or the trees themselves for dot.
func writeOutput(cmd *cobra.Command, format string, report engine.Report, trees engine.Channels) error {
	if format == "dot" {
		return engine.WriteDot(cmd.OutOrStdout(), trees)
	}
	return engine.WriteReport(cmd.OutOrStdout(), format, report)
}

// renderContext is cancelled on Ctrl+C or SIGTERM.
func renderContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}
