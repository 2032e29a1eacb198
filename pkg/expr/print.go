package expr

import (
	"fmt"
	"io"
)

// String methods

func (l *LeafNode) String() string {
	return l.Axis.String()
}

func (u *UnaryNode) String() string {
	return fmt.Sprintf("%s(%s)", u.Op, u.Child.String())
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Op, b.Left.String(), b.Right.String())
}

// LaTeX methods

func (l *LeafNode) LaTeX() string {
	return l.Axis.String()
}

func (u *UnaryNode) LaTeX() string {
	return fmt.Sprintf(u.Op.info().latex, u.Child.LaTeX())
}

func (b *BinaryNode) LaTeX() string {
	return fmt.Sprintf(b.Op.info().latex, b.Left.LaTeX(), b.Right.LaTeX())
}

// WriteDot writes the tree as a Graphviz digraph. Nodes are numbered in
// pre-order; leaves are drawn as filled squares.
func WriteDot(w io.Writer, name string, node Node) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", name); err != nil {
		return err
	}
	next := 0
	var walk func(n Node) (int, error)
	walk = func(n Node) (int, error) {
		id := next
		next++
		var err error
		switch n := n.(type) {
		case *LeafNode:
			_, err = fmt.Fprintf(w, "   %d [label=\"%s\",shape=square,style=filled];\n", id, n.Axis)
		case *UnaryNode:
			if _, err = fmt.Fprintf(w, "   %d [label=\"%s\"];\n", id, n.Op); err != nil {
				return id, err
			}
			var child int
			if child, err = walk(n.Child); err != nil {
				return id, err
			}
			_, err = fmt.Fprintf(w, "   %d -> %d;\n", child, id)
		case *BinaryNode:
			if _, err = fmt.Fprintf(w, "   %d [label=\"%s\"];\n", id, n.Op); err != nil {
				return id, err
			}
			for _, c := range []Node{n.Left, n.Right} {
				var child int
				if child, err = walk(c); err != nil {
					return id, err
				}
				if _, err = fmt.Fprintf(w, "   %d -> %d;\n", child, id); err != nil {
					return id, err
				}
			}
		default:
			panic("expr: unknown node type")
		}
		return id, err
	}
	if _, err := walk(node); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "}\n")
	return err
}
