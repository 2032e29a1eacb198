package cli

import (
	"github.com/spf13/cobra"

	"github.com/wildfunctions/recursive_art/pkg/engine"
	"github.com/wildfunctions/recursive_art/pkg/sink"
)

// NoiseOptions holds flags for the noise command.
type NoiseOptions struct {
	*RootOptions
	Width  int
	Height int
	Seed   int64
	Out    string
}

// NewNoiseCommand creates the noise command.
func NewNoiseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NoiseOptions{RootOptions: rootOpts}
	def := engine.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Write a random-pixel test image",
		Long: `Fills an image with uniformly random pixels. Useful to check that PNG
output works before rendering expressions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNoise(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Width, "width", def.Width, "image width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", def.Height, "image height in pixels")
	cmd.Flags().Int64Var(&opts.Seed, "seed", def.Seed, "random seed (0 = random)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "noise.png", "output PNG path")

	return cmd
}

func runNoise(cmd *cobra.Command, opts *NoiseOptions) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = opts.Width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = opts.Height
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.Seed
	}
	cfg.Filename = opts.Out
	resolveFormat(cmd, opts.RootOptions, &cfg)
	if cfg.Format == "dot" {
		return NewExitError(ExitCommandError, "noise has no expressions to write as dot")
	}

	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := renderContext(cmd)
	defer stop()

	report, err := e.Noise(ctx, sink.NewPNG(cfg.Filename))
	if err != nil {
		return WrapExitError(ExitFailure, "noise failed", err)
	}
	return engine.WriteReport(cmd.OutOrStdout(), cfg.Format, report)
}
