package engine

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/wildfunctions/recursive_art/pkg/pool"
)

//go:embed schema.cue
var configSchema string

// Validate checks the config against the embedded CUE schema, then
// resolves the pool or operator list.
func (c Config) Validate() error {
	_, err := c.check()
	return err
}

// check validates c and returns the pool it selects.
func (c Config) check() (pool.Pool, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(configSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling config schema: %w", err)
	}
	val := schema.LookupPath(cue.ParsePath("#Config")).Unify(ctx.Encode(c))
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	p, err := c.resolvePool()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return p, nil
}

func (c Config) resolvePool() (pool.Pool, error) {
	if len(c.Operators) > 0 {
		return pool.FromNames(c.Operators)
	}
	return pool.Get(c.Pool)
}
