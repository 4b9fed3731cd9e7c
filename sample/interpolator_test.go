package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundingInterpolator(t *testing.T) {
	interpolator := RoundingInterpolator[string]{}

	assert.Equal(t, "a", interpolator.Interpolate(0.0, "a", "b"))
	assert.Equal(t, "a", interpolator.Interpolate(0.4999999, "a", "b"))
	assert.Equal(t, "b", interpolator.Interpolate(0.5, "a", "b"))
	assert.Equal(t, "b", interpolator.Interpolate(0.75, "a", "b"))
	assert.Equal(t, "b", interpolator.Interpolate(1.0, "a", "b"))
}

func TestStepInterpolator(t *testing.T) {
	interpolator := StepInterpolator[string]{}

	assert.Equal(t, "a", interpolator.Interpolate(0.0, "a", "b"))
	assert.Equal(t, "a", interpolator.Interpolate(0.5, "a", "b"))
	assert.Equal(t, "a", interpolator.Interpolate(0.9999999, "a", "b"))
	assert.Equal(t, "b", interpolator.Interpolate(1.0, "a", "b"))
}

func TestLinearInterpolator(t *testing.T) {
	interpolator := NewNumberLinearInterpolator[int]()

	assert.Equal(t, 0, interpolator.Interpolate(0.0, 0, 10))
	assert.Equal(t, 2, interpolator.Interpolate(0.25, 0, 10))
	assert.Equal(t, 3, interpolator.Interpolate(0.3, 0, 10))
	assert.Equal(t, 5, interpolator.Interpolate(0.5, 0, 10))
	assert.Equal(t, 10, interpolator.Interpolate(1.0, 0, 10))

	// truncation toward zero
	assert.Equal(t, -2, interpolator.Interpolate(0.25, 0, -10))

	floats := NewNumberLinearInterpolator[float64]()
	assert.InDelta(t, 0.5, floats.Interpolate(0.5, 0, 1), 1e-12)
	assert.InDelta(t, 17.5, floats.Interpolate(0.25, 10, 40), 1e-12)
}

func TestLinearInterpolatorFallback(t *testing.T) {
	interpolator := NewLinearInterpolator[string](nil)

	assert.Equal(t, "a", interpolator.Interpolate(0.25, "a", "b"))
	assert.Equal(t, "b", interpolator.Interpolate(0.5, "a", "b"))
}

func TestInterpolatorFunc(t *testing.T) {
	var interpolator Interpolator[int] = InterpolatorFunc[int](func(fraction float64, start, end int) int {
		return start + end
	})

	assert.Equal(t, 3, interpolator.Interpolate(0.1, 1, 2))
}

func TestAbsTolerance(t *testing.T) {
	ints := AbsTolerance[int](1)
	assert.True(t, ints.InTolerance(20, 21))
	assert.True(t, ints.InTolerance(21, 20))
	assert.False(t, ints.InTolerance(19, 21))

	uints := AbsTolerance[uint](1)
	assert.False(t, uints.InTolerance(3, 5))
	assert.True(t, uints.InTolerance(5, 4))

	floats := AbsTolerance[float64](0.5)
	assert.True(t, floats.InTolerance(1.0, 1.5))
	assert.False(t, floats.InTolerance(1.0, 1.6))

	int8s := AbsTolerance[int8](1)
	assert.False(t, int8s.InTolerance(100, -100))
	assert.False(t, int8s.InTolerance(-100, 100))
	assert.False(t, int8s.InTolerance(math.MaxInt8, math.MinInt8))
	assert.True(t, int8s.InTolerance(-128, -127))

	int64s := AbsTolerance[int64](1)
	assert.False(t, int64s.InTolerance(math.MaxInt64, -1))
	assert.False(t, int64s.InTolerance(math.MinInt64, math.MaxInt64))
	assert.True(t, int64s.InTolerance(math.MaxInt64, math.MaxInt64-1))

	assert.True(t, AbsTolerance[int8](math.MaxInt8).InTolerance(100, -27))
	assert.False(t, AbsTolerance[int8](math.MaxInt8).InTolerance(100, -28))
}

func TestNumberCodec(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), NumberCodec[int64]().FromFloat64(float64(math.MaxInt64)))
	assert.Equal(t, int64(math.MinInt64), NumberCodec[int64]().FromFloat64(math.Inf(-1)))
	assert.Equal(t, uint64(math.MaxUint64), NumberCodec[uint64]().FromFloat64(float64(math.MaxUint64)))
	assert.Equal(t, uint64(0), NumberCodec[uint64]().FromFloat64(-3))
	assert.Equal(t, int8(127), NumberCodec[int8]().FromFloat64(1000))
	assert.Equal(t, int8(-128), NumberCodec[int8]().FromFloat64(-1000))
	assert.Equal(t, int8(-2), NumberCodec[int8]().FromFloat64(-2.9))
	assert.Equal(t, 0, NumberCodec[int]().FromFloat64(math.NaN()))
	assert.Equal(t, float32(1.5), NumberCodec[float32]().FromFloat64(1.5))
	assert.True(t, math.IsInf(NumberCodec[float64]().FromFloat64(math.Inf(1)), 1))

	extremes := NewNumberLinearInterpolator[int64]()
	assert.Equal(t, int64(math.MaxInt64), extremes.Interpolate(0.5, math.MaxInt64, math.MaxInt64))
}
