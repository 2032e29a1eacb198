package remap

import (
	"fmt"
	"math"
)

// colorMapper sends channel values in [-1, 1] to [0, 255].
var colorMapper = &Mapper{inLo: -1, inSpan: 2, outLo: 0, outSpan: 255}

// byteLimit bounds ToByte results. It is a multiple of 256, exactly
// representable as float64 and fits in a 32-bit int.
const byteLimit = 1 << 30

// ToByte maps val from [-1, 1] to an integer in [0, 255], truncating toward
// zero. Inputs outside [-1, 1] are not clamped and produce integers outside
// the byte range; see Narrow. Results saturate at ±byteLimit in float space,
// and NaN maps to -byteLimit, so huge or undefined channel values narrow the
// same way on every platform.
func ToByte(val float64) int {
	m := colorMapper.Map(val)
	switch {
	case math.IsNaN(m), m <= -byteLimit:
		return -byteLimit
	case m >= byteLimit:
		return byteLimit
	}
	return int(m)
}

// Gamut selects how ToByte results outside [0, 255] become a byte.
type Gamut string

const (
	// GamutWrap keeps the low eight bits, like a plain integer conversion.
	GamutWrap Gamut = "wrap"
	// GamutClamp saturates to 0 or 255.
	GamutClamp Gamut = "clamp"
)

// ParseGamut validates a gamut policy name.
func ParseGamut(s string) (Gamut, error) {
	switch g := Gamut(s); g {
	case GamutWrap, GamutClamp:
		return g, nil
	default:
		return "", fmt.Errorf("unknown gamut policy %q (want %q or %q)", s, GamutWrap, GamutClamp)
	}
}

// InGamut reports whether v fits in a byte unchanged.
func InGamut(v int) bool {
	return v >= 0 && v <= 255
}

// Narrow converts a ToByte result to a byte under the given policy.
func Narrow(v int, g Gamut) uint8 {
	if g == GamutClamp {
		switch {
		case v < 0:
			return 0
		case v > 255:
			return 255
		}
	}
	return uint8(v)
}
