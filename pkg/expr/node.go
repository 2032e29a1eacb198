package expr

// Node is the interface for all expression tree nodes.
//
// Trees are immutable once built: nothing in this package mutates a node
// after construction, so a tree may be evaluated from several goroutines.
type Node interface {
	Eval(x, y float64) float64
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int
}

// Axis identifies which coordinate a leaf reads.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "?"
	}
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpCosPi UnaryOp = iota
	OpSinPi
	OpSquare
	OpCube
	OpNegate
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpProduct BinaryOp = iota
	OpAverage
	OpSum
	OpMagnitude
	OpSumOfSquares
)

// LeafNode reads one of the two coordinates.
type LeafNode struct {
	Axis Axis
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Node
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

// X returns a leaf reading the x coordinate.
func X() Node { return &LeafNode{Axis: AxisX} }

// Y returns a leaf reading the y coordinate.
func Y() Node { return &LeafNode{Axis: AxisY} }
