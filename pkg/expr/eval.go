package expr

import "fmt"

// Evaluate interprets node at (x, y). It is a pure function of its
// arguments; for trees built from closed operators and x, y in [-1, 1] the
// result stays in [-1, 1].
func Evaluate(node Node, x, y float64) float64 {
	if node == nil {
		panic("expr: evaluate nil node")
	}
	return node.Eval(x, y)
}

// Eval for LeafNode returns the coordinate named by its axis.
func (l *LeafNode) Eval(x, y float64) float64 {
	switch l.Axis {
	case AxisX:
		return x
	case AxisY:
		return y
	default:
		panic(fmt.Sprintf("expr: unknown axis %d", int(l.Axis)))
	}
}

// Eval for UnaryNode evaluates the child, then applies the op.
func (u *UnaryNode) Eval(x, y float64) float64 {
	fn := u.Op.info().fn
	return fn(Evaluate(u.Child, x, y))
}

// Eval for BinaryNode evaluates left then right, then applies the op.
func (b *BinaryNode) Eval(x, y float64) float64 {
	fn := b.Op.info().fn
	left := Evaluate(b.Left, x, y)
	right := Evaluate(b.Right, x, y)
	return fn(left, right)
}
