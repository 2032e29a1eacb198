package pool

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// Pool provides random building blocks for constructing expression trees.
type Pool interface {
	Name() string
	Operators() []expr.Operator
	RandomLeaf(rng *rand.Rand) expr.Node
	RandomOperator(rng *rand.Rand) expr.Operator
	RandomTree(rng *rand.Rand, minDepth, maxDepth int) expr.Node
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// FromNames builds an unregistered pool from operator names.
func FromNames(names []string) (Pool, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty operator list")
	}
	seen := make(map[string]bool, len(names))
	ops := make([]expr.Operator, 0, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("duplicate operator: %s", name)
		}
		seen[name] = true
		op, err := expr.LookupOperator(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return &opPool{name: "custom", ops: ops}, nil
}

// opPool draws operators uniformly from a fixed list.
type opPool struct {
	name string
	ops  []expr.Operator
}

func (p *opPool) Name() string { return p.name }

func (p *opPool) Operators() []expr.Operator {
	out := make([]expr.Operator, len(p.ops))
	copy(out, p.ops)
	return out
}

func (p *opPool) RandomLeaf(rng *rand.Rand) expr.Node {
	if rng.Intn(2) == 0 {
		return expr.X()
	}
	return expr.Y()
}

func (p *opPool) RandomOperator(rng *rand.Rand) expr.Operator {
	return p.ops[rng.Intn(len(p.ops))]
}

func (p *opPool) RandomTree(rng *rand.Rand, minDepth, maxDepth int) expr.Node {
	return randomTree(p, rng, minDepth, maxDepth)
}

// randomTree is a shared helper for building random trees. The root depth
// is drawn uniformly from [minDepth, maxDepth]; children are pinned to
// exactly one less, so every leaf sits at the drawn depth.
func randomTree(p Pool, rng *rand.Rand, minDepth, maxDepth int) expr.Node {
	if minDepth < 1 || maxDepth < minDepth {
		panic(fmt.Sprintf("pool: invalid depth range [%d, %d]", minDepth, maxDepth))
	}
	depth := minDepth + rng.Intn(maxDepth-minDepth+1)
	if depth == 1 {
		return p.RandomLeaf(rng)
	}
	op := p.RandomOperator(rng)
	children := make([]expr.Node, op.Arity())
	for i := range children {
		children[i] = randomTree(p, rng, depth-1, depth-1)
	}
	return op.New(children...)
}
