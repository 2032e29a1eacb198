package pool

import "github.com/wildfunctions/recursive_art/pkg/expr"

func init() {
	Register("full", func() Pool { return &opPool{name: "full", ops: expr.Vocabulary()} })
}
