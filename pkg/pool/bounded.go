package pool

import "github.com/wildfunctions/recursive_art/pkg/expr"

func init() {
	Register("bounded", func() Pool { return &opPool{name: "bounded", ops: boundedOps} })
}

// boundedOps maps [-1, 1] inputs back into [-1, 1]; sum, magnitude and
// sum_of_squares are left out because they can reach 2.
var boundedOps = []expr.Operator{
	expr.Binary(expr.OpProduct),
	expr.Binary(expr.OpAverage),
	expr.Unary(expr.OpCosPi),
	expr.Unary(expr.OpSinPi),
	expr.Unary(expr.OpSquare),
	expr.Unary(expr.OpCube),
	expr.Unary(expr.OpNegate),
}
