package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/recursive_art/pkg/expr"
	"github.com/wildfunctions/recursive_art/pkg/pool"
	"github.com/wildfunctions/recursive_art/pkg/remap"
	"github.com/wildfunctions/recursive_art/pkg/sink"
)

// Channel identifies a color channel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

var channelNames = [...]string{"red", "green", "blue"}

func (c Channel) String() string { return channelNames[c] }

// Channels holds one expression tree per color channel, indexed by Channel.
type Channels [3]expr.Node

// Engine builds channel expressions and renders them.
type Engine struct {
	cfg   Config
	pool  pool.Pool
	gamut remap.Gamut
	seed  int64
	rng   *rand.Rand
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	p, err := cfg.check()
	if err != nil {
		return nil, err
	}
	gamut, err := remap.ParseGamut(cfg.Gamut)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	return &Engine{
		cfg:   cfg,
		pool:  p,
		gamut: gamut,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Config returns the engine's config.
func (e *Engine) Config() Config { return e.cfg }

// Seed returns the effective seed, including one drawn for Seed == 0.
func (e *Engine) Seed() int64 { return e.seed }

// Build draws a fresh tree for each channel from the engine's pool.
func (e *Engine) Build() Channels {
	var trees Channels
	for c := range trees {
		trees[c] = e.pool.RandomTree(e.rng, e.cfg.MinDepth, e.cfg.MaxDepth)
		slog.Debug("channel built",
			"channel", Channel(c),
			"depth", trees[c].Depth(),
			"nodes", trees[c].NodeCount(),
		)
	}
	return trees
}

// Describe builds a report for trees without rendering them.
func (e *Engine) Describe(trees Channels) Report {
	r := e.newReport(ModePrint)
	r.Channels = describeChannels(trees)
	return r
}

// Render builds the three channel trees, evaluates them at every pixel and
// writes the image to s.
func (e *Engine) Render(ctx context.Context, s sink.Sink) (Report, error) {
	return e.RenderTrees(ctx, e.Build(), s)
}

// RenderTrees evaluates trees at every pixel and writes the image to s. s is
// closed on success only, so a failed render never persists a partial image.
func (e *Engine) RenderTrees(ctx context.Context, trees Channels, s sink.Sink) (Report, error) {
	start := time.Now()
	report := e.newReport(ModeArt)
	report.Channels = describeChannels(trees)

	slog.Info("render starting",
		"width", e.cfg.Width,
		"height", e.cfg.Height,
		"seed", e.seed,
		"pool", e.pool.Name(),
		"workers", e.cfg.Workers,
	)

	outOfGamut, err := Rasterize(ctx, trees, e.cfg.Width, e.cfg.Height, e.cfg.Workers, e.gamut, s)
	if err != nil {
		return report, err
	}
	for c := range report.Channels {
		report.Channels[c].OutOfGamut = outOfGamut[c]
		if outOfGamut[c] > 0 {
			slog.Warn("channel left the color gamut",
				"channel", Channel(c),
				"samples", outOfGamut[c],
				"policy", string(e.gamut),
			)
		}
	}
	if err := s.Close(); err != nil {
		return report, err
	}

	report.Pixels = e.cfg.Width * e.cfg.Height
	report.Output = sinkPath(s)
	report.Elapsed = time.Since(start)
	slog.Info("render finished", "pixels", report.Pixels, "elapsed", report.Elapsed)
	return report, nil
}

// Noise fills s with uniformly random pixels, ignoring expressions. It is a
// quick check that the image sink works end to end.
func (e *Engine) Noise(ctx context.Context, s sink.Sink) (Report, error) {
	start := time.Now()
	report := e.newReport(ModeNoise)
	if err := s.Begin(e.cfg.Width, e.cfg.Height); err != nil {
		return report, err
	}
	for j := 0; j < e.cfg.Height; j++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		for i := 0; i < e.cfg.Width; i++ {
			s.Set(i, j, uint8(e.rng.Intn(256)), uint8(e.rng.Intn(256)), uint8(e.rng.Intn(256)))
		}
	}
	if err := s.Close(); err != nil {
		return report, err
	}
	report.Pixels = e.cfg.Width * e.cfg.Height
	report.Output = sinkPath(s)
	report.Elapsed = time.Since(start)
	return report, nil
}

// Rasterize evaluates trees at every pixel of a width x height grid and
// writes the colors to s. Pixel (i, j) samples x = remap(i, 0, width, -1, 1)
// and y = remap(j, 0, height, -1, 1). Rows are spread over up to workers
// goroutines; each row is written by exactly one of them. It returns, per
// channel, how many samples fell outside [0, 255] before narrowing.
func Rasterize(ctx context.Context, trees Channels, width, height, workers int, gamut remap.Gamut, s sink.Sink) ([3]int64, error) {
	var counts [3]int64

	xs, err := remap.NewMapper(0, float64(width), -1, 1)
	if err != nil {
		return counts, fmt.Errorf("x coordinates: %w", err)
	}
	ys, err := remap.NewMapper(0, float64(height), -1, 1)
	if err != nil {
		return counts, fmt.Errorf("y coordinates: %w", err)
	}
	if err := s.Begin(width, height); err != nil {
		return counts, err
	}

	if workers <= 0 {
		workers = 1
	}
	var outOfGamut [3]atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for j := 0; j < height; j++ {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			y := ys.Map(float64(j))
			var miss [3]int64
			var px [3]uint8
			for i := 0; i < width; i++ {
				x := xs.Map(float64(i))
				for c, tree := range trees {
					v := remap.ToByte(expr.Evaluate(tree, x, y))
					if !remap.InGamut(v) {
						miss[c]++
					}
					px[c] = remap.Narrow(v, gamut)
				}
				s.Set(i, j, px[Red], px[Green], px[Blue])
			}
			for c := range miss {
				outOfGamut[c].Add(miss[c])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return counts, err
	}
	// The scheduling loop can stop early without any row reporting it.
	if err := ctx.Err(); err != nil {
		return counts, err
	}

	for c := range counts {
		counts[c] = outOfGamut[c].Load()
	}
	return counts, nil
}

func (e *Engine) newReport(mode string) Report {
	var ops []string
	if mode != ModeNoise {
		for _, op := range e.pool.Operators() {
			ops = append(ops, op.Name())
		}
	}
	return Report{
		RunID:     uuid.Must(uuid.NewV7()).String(),
		Mode:      mode,
		Seed:      e.seed,
		Pool:      e.pool.Name(),
		Operators: ops,
		Config:    e.cfg,
		Timestamp: time.Now().UTC(),
	}
}

func describeChannels(trees Channels) []ChannelReport {
	out := make([]ChannelReport, len(trees))
	for c, tree := range trees {
		out[c] = ChannelReport{
			Channel:    Channel(c).String(),
			Expression: tree.String(),
			LaTeX:      tree.LaTeX(),
			Depth:      tree.Depth(),
			NodeCount:  tree.NodeCount(),
			Operators:  expr.Operators(tree),
		}
	}
	return out
}

func sinkPath(s sink.Sink) string {
	if p, ok := s.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}
