package expr

func (l *LeafNode) NodeCount() int  { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (l *LeafNode) Depth() int  { return 1 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// Operators counts how often each operator name appears in the tree.
func Operators(node Node) map[string]int {
	counts := make(map[string]int)
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *LeafNode:
		case *UnaryNode:
			counts[n.Op.String()]++
			walk(n.Child)
		case *BinaryNode:
			counts[n.Op.String()]++
			walk(n.Left)
			walk(n.Right)
		default:
			panic("expr: unknown node type")
		}
	}
	walk(node)
	return counts
}
