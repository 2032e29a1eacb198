package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/recursive_art/pkg/engine"
	"github.com/wildfunctions/recursive_art/pkg/pool"
)

// exprFlags are the tree-building flags shared by render and print. Only
// flags the user actually set override the config file.
type exprFlags struct {
	width     int
	height    int
	minDepth  int
	maxDepth  int
	pool      string
	operators []string
	seed      int64
	workers   int
	gamut     string
}

func (f *exprFlags) register(cmd *cobra.Command) {
	def := engine.DefaultConfig()
	fs := cmd.Flags()
	fs.IntVar(&f.width, "width", def.Width, "image width in pixels")
	fs.IntVar(&f.height, "height", def.Height, "image height in pixels")
	fs.IntVar(&f.minDepth, "min-depth", def.MinDepth, "minimum tree depth")
	fs.IntVar(&f.maxDepth, "max-depth", def.MaxDepth, "maximum tree depth")
	fs.StringVar(&f.pool, "pool", def.Pool, "operator pool ("+strings.Join(pool.Names(), ", ")+")")
	fs.StringSliceVar(&f.operators, "operators", nil, "explicit operator list, overrides --pool")
	fs.Int64Var(&f.seed, "seed", def.Seed, "random seed (0 = random)")
	fs.IntVar(&f.workers, "workers", def.Workers, "number of parallel row workers")
	fs.StringVar(&f.gamut, "gamut", def.Gamut, "out-of-range color policy (wrap, clamp)")
}

func (f *exprFlags) apply(cmd *cobra.Command, cfg *engine.Config) {
	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("min-depth") {
		cfg.MinDepth = f.minDepth
	}
	if fs.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if fs.Changed("pool") {
		cfg.Pool = f.pool
		cfg.Operators = nil
	}
	if fs.Changed("operators") {
		cfg.Operators = f.operators
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("gamut") {
		cfg.Gamut = f.gamut
	}
}
