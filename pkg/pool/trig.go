package pool

import "github.com/wildfunctions/recursive_art/pkg/expr"

func init() {
	Register("trig", func() Pool { return &opPool{name: "trig", ops: trigOps} })
}

// trigOps favors smooth periodic bands.
var trigOps = []expr.Operator{
	expr.Unary(expr.OpCosPi),
	expr.Unary(expr.OpSinPi),
	expr.Unary(expr.OpNegate),
	expr.Binary(expr.OpProduct),
	expr.Binary(expr.OpAverage),
}
