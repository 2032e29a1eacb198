package cli

import (
	"github.com/spf13/cobra"
)

// PrintOptions holds flags for the print command.
type PrintOptions struct {
	*RootOptions
	expr exprFlags
}

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PrintOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print random channel expressions without rendering",
		Long: `Builds the three channel trees and prints them in the chosen format.
With a fixed --seed, print shows exactly the trees render would draw.

Examples:
  recursive-art print --seed 7
  recursive-art print --seed 7 --format latex > art.tex
  recursive-art print --seed 7 --format dot | dot -Tsvg > trees.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, opts)
		},
	}

	opts.expr.register(cmd)

	return cmd
}

func runPrint(cmd *cobra.Command, opts *PrintOptions) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	opts.expr.apply(cmd, &cfg)
	resolveFormat(cmd, opts.RootOptions, &cfg)

	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	trees := e.Build()
	return writeOutput(cmd, cfg.Format, e.Describe(trees), trees)
}
