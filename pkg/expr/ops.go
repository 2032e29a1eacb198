package expr

import (
	"fmt"
	"math"
)

type unaryInfo struct {
	name  string
	latex string // one %s for the operand
	fn    func(c float64) float64
}

type binaryInfo struct {
	name  string
	latex string // two %s for the operands
	fn    func(l, r float64) float64
}

// Operator registry. Each entry is the whole definition of an operator;
// vocabulary below fixes the canonical order.
var unaryOps = map[UnaryOp]unaryInfo{
	OpCosPi:  {"cos_pi", `\cos(\pi %s)`, func(c float64) float64 { return math.Cos(math.Pi * c) }},
	OpSinPi:  {"sin_pi", `\sin(\pi %s)`, func(c float64) float64 { return math.Sin(math.Pi * c) }},
	OpSquare: {"square", `{(%s)}^{2}`, func(c float64) float64 { return c * c }},
	OpCube:   {"cube", `{(%s)}^{3}`, func(c float64) float64 { return c * c * c }},
	OpNegate: {"negate", `-(%s)`, func(c float64) float64 { return -c }},
}

var binaryOps = map[BinaryOp]binaryInfo{
	OpProduct:      {"product", `(%s) \cdot (%s)`, func(l, r float64) float64 { return l * r }},
	OpAverage:      {"average", `\frac{%s + %s}{2}`, func(l, r float64) float64 { return 0.5 * (l + r) }},
	OpSum:          {"sum", `(%s + %s)`, func(l, r float64) float64 { return l + r }},
	OpMagnitude:    {"magnitude", `\sqrt{{(%s)}^{2} + {(%s)}^{2}}`, func(l, r float64) float64 { return math.Sqrt(l*l + r*r) }},
	OpSumOfSquares: {"sum_of_squares", `({(%s)}^{2} + {(%s)}^{2})`, func(l, r float64) float64 { return l*l + r*r }},
}

var vocabulary = []Operator{
	Binary(OpProduct),
	Binary(OpAverage),
	Unary(OpCosPi),
	Unary(OpSinPi),
	Unary(OpSquare),
	Unary(OpCube),
	Unary(OpNegate),
	Binary(OpSum),
	Binary(OpMagnitude),
	Binary(OpSumOfSquares),
}

func (op UnaryOp) info() unaryInfo {
	info, ok := unaryOps[op]
	if !ok {
		panic(fmt.Sprintf("expr: unknown unary op %d", int(op)))
	}
	return info
}

func (op BinaryOp) info() binaryInfo {
	info, ok := binaryOps[op]
	if !ok {
		panic(fmt.Sprintf("expr: unknown binary op %d", int(op)))
	}
	return info
}

func (op UnaryOp) String() string  { return op.info().name }
func (op BinaryOp) String() string { return op.info().name }

// Operator is one entry of the operator vocabulary: either a unary or a
// binary operation, usable by builders without switching on arity.
type Operator struct {
	arity  int
	unary  UnaryOp
	binary BinaryOp
}

// Unary wraps a unary op as an Operator.
func Unary(op UnaryOp) Operator { return Operator{arity: 1, unary: op} }

// Binary wraps a binary op as an Operator.
func Binary(op BinaryOp) Operator { return Operator{arity: 2, binary: op} }

// Arity is the number of children the operator takes.
func (o Operator) Arity() int { return o.arity }

func (o Operator) Name() string {
	switch o.arity {
	case 1:
		return o.unary.String()
	case 2:
		return o.binary.String()
	default:
		panic(fmt.Sprintf("expr: operator with arity %d", o.arity))
	}
}

func (o Operator) String() string { return o.Name() }

// New builds a node applying the operator to children. It panics when the
// number of children does not match the arity.
func (o Operator) New(children ...Node) Node {
	if len(children) != o.arity {
		panic(fmt.Sprintf("expr: %s takes %d children, got %d", o.Name(), o.arity, len(children)))
	}
	if o.arity == 1 {
		return &UnaryNode{Op: o.unary, Child: children[0]}
	}
	return &BinaryNode{Op: o.binary, Left: children[0], Right: children[1]}
}

// Vocabulary returns every operator in canonical order.
func Vocabulary() []Operator {
	out := make([]Operator, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// LookupOperator resolves an operator by name.
func LookupOperator(name string) (Operator, error) {
	for _, op := range vocabulary {
		if op.Name() == name {
			return op, nil
		}
	}
	return Operator{}, fmt.Errorf("unknown operator: %s", name)
}

// OperatorNames returns the names of the whole vocabulary in canonical order.
func OperatorNames() []string {
	names := make([]string, len(vocabulary))
	for i, op := range vocabulary {
		names[i] = op.Name()
	}
	return names
}
