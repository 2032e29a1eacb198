package remap

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapExamples(t *testing.T) {
	cases := []struct {
		val, inLo, inHi, outLo, outHi float64
		want                          float64
	}{
		{0.5, 0, 1, 0, 10, 5},
		{5, 4, 6, 0, 2, 1},
		{5, 4, 6, 1, 2, 1.5},
		{0, 0, 350, -1, 1, -1},
		{175, 0, 350, -1, 1, 0},
		{3, 0, 1, 0, 10, 30},
		{0, 1, -1, 0, 10, 5},
	}
	for _, tc := range cases {
		got, err := Remap(tc.val, tc.inLo, tc.inHi, tc.outLo, tc.outHi)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "%+v", tc)
	}
}

func TestRemapEndpoints(t *testing.T) {
	intervals := [][4]float64{
		{0, 1, 0, 10},
		{-1, 1, 0, 255},
		{0, 350, -1, 1},
		{4, 6, 1, 2},
		{10, -3, 7, 7.5},
		{-2.5, 1e6, -1e-3, 1e3},
	}
	for _, iv := range intervals {
		lo, err := Remap(iv[0], iv[0], iv[1], iv[2], iv[3])
		require.NoError(t, err)
		assert.Equal(t, iv[2], lo, "%v", iv)

		hi, err := Remap(iv[1], iv[0], iv[1], iv[2], iv[3])
		require.NoError(t, err)
		assert.InDelta(t, iv[3], hi, 1e-9*math.Max(1, math.Abs(iv[3])), "%v", iv)
	}
}

func TestRemapRoundTrip(t *testing.T) {
	a, b, c, d := -1.0, 1.0, 0.0, 255.0
	for v := a; v <= b; v += 0.125 {
		there, err := Remap(v, a, b, c, d)
		require.NoError(t, err)
		back, err := Remap(there, c, d, a, b)
		require.NoError(t, err)
		assert.InDelta(t, v, back, 1e-12)
	}

	a, b, c, d = 0, 350, -1, 1
	for v := a; v <= b; v += 7 {
		there, err := Remap(v, a, b, c, d)
		require.NoError(t, err)
		back, err := Remap(there, c, d, a, b)
		require.NoError(t, err)
		assert.InDelta(t, v, back, 1e-9)
	}
}

func TestRemapDegenerate(t *testing.T) {
	_, err := Remap(1, 3, 3, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateInterval))

	var de *DegenerateIntervalError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3.0, de.Lo)
	assert.Equal(t, 3.0, de.Hi)

	_, err = NewMapper(0, 0, -1, 1)
	assert.ErrorIs(t, err, ErrDegenerateInterval)

	// A degenerate output interval is fine.
	v, err := Remap(0.3, 0, 1, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestMapperMatchesRemap(t *testing.T) {
	m, err := NewMapper(0, 350, -1, 1)
	require.NoError(t, err)
	for i := 0; i < 350; i += 13 {
		want, err := Remap(float64(i), 0, 350, -1, 1)
		require.NoError(t, err)
		assert.Equal(t, want, m.Map(float64(i)))
	}
}

func TestToByte(t *testing.T) {
	assert.Equal(t, 0, ToByte(-1.0))
	assert.Equal(t, 255, ToByte(1.0))
	assert.Equal(t, 127, ToByte(0.0))
	assert.Equal(t, 191, ToByte(0.5))
	assert.Equal(t, 63, ToByte(-0.5))

	// Out of range values are not clamped.
	assert.Equal(t, 382, ToByte(2.0))
	assert.Equal(t, -127, ToByte(-2.0))

	// Beyond int range the result saturates instead of overflowing.
	assert.Equal(t, byteLimit, ToByte(1e38))
	assert.Equal(t, -byteLimit, ToByte(-1e38))
	assert.Equal(t, byteLimit, ToByte(math.Inf(1)))
	assert.Equal(t, -byteLimit, ToByte(math.Inf(-1)))
	assert.Equal(t, -byteLimit, ToByte(math.NaN()))
}

func TestNarrow(t *testing.T) {
	assert.Equal(t, uint8(200), Narrow(200, GamutWrap))
	assert.Equal(t, uint8(200), Narrow(200, GamutClamp))

	assert.Equal(t, uint8(382-256), Narrow(382, GamutWrap))
	assert.Equal(t, uint8(255), Narrow(382, GamutClamp))

	assert.Equal(t, uint8(256-127), Narrow(-127, GamutWrap))
	assert.Equal(t, uint8(0), Narrow(-127, GamutClamp))

	huge := []struct {
		val         float64
		clamp, wrap uint8
	}{
		{1e38, 255, 0},
		{math.Inf(1), 255, 0},
		{-1e38, 0, 0},
		{math.Inf(-1), 0, 0},
		{math.NaN(), 0, 0},
	}
	for _, tc := range huge {
		v := ToByte(tc.val)
		assert.False(t, InGamut(v), "%v", tc.val)
		assert.Equal(t, tc.clamp, Narrow(v, GamutClamp), "%v", tc.val)
		assert.Equal(t, tc.wrap, Narrow(v, GamutWrap), "%v", tc.val)
	}

	assert.True(t, InGamut(0))
	assert.True(t, InGamut(255))
	assert.False(t, InGamut(256))
	assert.False(t, InGamut(-1))
}

func TestParseGamut(t *testing.T) {
	g, err := ParseGamut("clamp")
	require.NoError(t, err)
	assert.Equal(t, GamutClamp, g)

	g, err = ParseGamut("wrap")
	require.NoError(t, err)
	assert.Equal(t, GamutWrap, g)

	_, err = ParseGamut("saturate")
	assert.Error(t, err)
}
