package pool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// shallowestLeaf returns the length of the shortest root-to-leaf path,
// counting the root.
func shallowestLeaf(node expr.Node) int {
	switch n := node.(type) {
	case *expr.LeafNode:
		return 1
	case *expr.UnaryNode:
		return 1 + shallowestLeaf(n.Child)
	case *expr.BinaryNode:
		return 1 + min(shallowestLeaf(n.Left), shallowestLeaf(n.Right))
	default:
		panic("unknown node type")
	}
}

func TestShallowestLeaf(t *testing.T) {
	lopsided := &expr.BinaryNode{
		Op:    expr.OpSum,
		Left:  &expr.UnaryNode{Op: expr.OpCube, Child: &expr.UnaryNode{Op: expr.OpSinPi, Child: expr.Y()}},
		Right: expr.X(),
	}
	assert.Equal(t, 4, lopsided.Depth())
	assert.Equal(t, 2, shallowestLeaf(lopsided))
}

func TestDepthBound(t *testing.T) {
	p, err := Get("full")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for minDepth := 1; minDepth <= 6; minDepth++ {
		for maxDepth := minDepth; maxDepth <= 7; maxDepth++ {
			for i := 0; i < 20; i++ {
				tree := p.RandomTree(rng, minDepth, maxDepth)
				d := tree.Depth()
				assert.GreaterOrEqual(t, d, minDepth)
				assert.LessOrEqual(t, d, maxDepth)
				if d == 1 {
					assert.IsType(t, &expr.LeafNode{}, tree)
				}
			}
		}
	}
}

// Children are pinned to depth d-1, so every leaf is at the root's depth.
func TestExactShape(t *testing.T) {
	p, err := Get("full")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		tree := p.RandomTree(rng, 1, 8)
		assert.Equal(t, tree.Depth(), shallowestLeaf(tree), tree.String())
	}
}

func TestTermination(t *testing.T) {
	p, err := Get("full")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		tree := p.RandomTree(rng, 1, 1)
		require.IsType(t, &expr.LeafNode{}, tree)
		assert.Equal(t, 1, tree.Depth())
	}
}

func TestLeavesCoverBothAxes(t *testing.T) {
	p, err := Get("full")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	seen := map[expr.Axis]int{}
	for i := 0; i < 200; i++ {
		seen[p.RandomLeaf(rng).(*expr.LeafNode).Axis]++
	}
	assert.Greater(t, seen[expr.AxisX], 50)
	assert.Greater(t, seen[expr.AxisY], 50)
}

func TestFullPoolUsesWholeVocabulary(t *testing.T) {
	p, err := Get("full")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[p.RandomOperator(rng).Name()] = true
	}
	for _, name := range expr.OperatorNames() {
		assert.True(t, seen[name], "operator %s never drawn", name)
	}
}

func TestBoundedPoolStaysInRange(t *testing.T) {
	p, err := Get("bounded")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		tree := p.RandomTree(rng, 4, 7)
		for j := 0; j < 50; j++ {
			x := rng.Float64()*2 - 1
			y := rng.Float64()*2 - 1
			v := expr.Evaluate(tree, x, y)
			require.True(t, v >= -1 && v <= 1, "%s(%v, %v) = %v", tree, x, y, v)
		}
	}
}

func TestSeededTreesAreReproducible(t *testing.T) {
	p, err := Get("full")
	require.NoError(t, err)

	a := p.RandomTree(rand.New(rand.NewSource(99)), 7, 9)
	b := p.RandomTree(rand.New(rand.NewSource(99)), 7, 9)
	assert.Equal(t, a.String(), b.String())
}

func TestInvalidRangePanics(t *testing.T) {
	p, err := Get("full")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { p.RandomTree(rng, 0, 3) })
	assert.Panics(t, func() { p.RandomTree(rng, 5, 4) })
}

func TestFromNames(t *testing.T) {
	p, err := FromNames([]string{"square", "product"})
	require.NoError(t, err)
	assert.Equal(t, "custom", p.Name())
	require.Len(t, p.Operators(), 2)

	rng := rand.New(rand.NewSource(2))
	tree := p.RandomTree(rng, 5, 5)
	for name := range expr.Operators(tree) {
		assert.Contains(t, []string{"square", "product"}, name)
	}

	_, err = FromNames(nil)
	assert.Error(t, err)
	_, err = FromNames([]string{"square", "square"})
	assert.Error(t, err)
	_, err = FromNames([]string{"tan"})
	assert.Error(t, err)
}

func TestPoolRegistry(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"bounded", "full", "trig"}, names)

	for _, name := range names {
		p, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
		assert.NotEmpty(t, p.Operators())
	}
}

func TestUnknownPool(t *testing.T) {
	_, err := Get("nonexistent")
	assert.Error(t, err)
}
