// Package remap maps values linearly between intervals and turns channel
// values into color bytes.
package remap

import (
	"errors"
	"fmt"
)

// ErrDegenerateInterval is matched by every *DegenerateIntervalError.
var ErrDegenerateInterval = errors.New("degenerate input interval")

// DegenerateIntervalError reports an input interval with equal endpoints.
type DegenerateIntervalError struct {
	Lo, Hi float64
}

func (e *DegenerateIntervalError) Error() string {
	return fmt.Sprintf("%v: [%g, %g]", ErrDegenerateInterval, e.Lo, e.Hi)
}

func (e *DegenerateIntervalError) Is(target error) bool {
	return target == ErrDegenerateInterval
}

// Remap sends val from [inLo, inHi] to [outLo, outHi] with the affine map
// taking inLo to outLo and inHi to outHi. Values outside the input interval
// extrapolate.
func Remap(val, inLo, inHi, outLo, outHi float64) (float64, error) {
	m, err := NewMapper(inLo, inHi, outLo, outHi)
	if err != nil {
		return 0, err
	}
	return m.Map(val), nil
}

// Mapper is a precomputed Remap for a fixed pair of intervals.
type Mapper struct {
	inLo, inSpan   float64
	outLo, outSpan float64
}

// NewMapper validates the input interval once so Map can be called in a
// pixel loop without error checks.
func NewMapper(inLo, inHi, outLo, outHi float64) (*Mapper, error) {
	if inHi == inLo {
		return nil, &DegenerateIntervalError{Lo: inLo, Hi: inHi}
	}
	return &Mapper{
		inLo:    inLo,
		inSpan:  inHi - inLo,
		outLo:   outLo,
		outSpan: outHi - outLo,
	}, nil
}

func (m *Mapper) Map(val float64) float64 {
	return m.outLo + (val-m.inLo)*m.outSpan/m.inSpan
}
