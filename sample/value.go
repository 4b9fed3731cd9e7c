package sample

import (
	"math"
	"unsafe"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

type Ordered interface {
	Number | ~string
}

// Tolerance decides whether two values are close enough for one of them to be
// dropped during compression.
type Tolerance[T any] interface {
	InTolerance(one, other T) bool
}

type ToleranceFunc[T any] func(one, other T) bool

func (f ToleranceFunc[T]) InTolerance(one, other T) bool {
	return f(one, other)
}

type absTolerance[T Number] struct {
	tolerance T
}

// AbsTolerance accepts two values when their absolute difference is at most tolerance.
func AbsTolerance[T Number](tolerance T) Tolerance[T] {
	return absTolerance[T]{tolerance: tolerance}
}

func (t absTolerance[T]) InTolerance(one, other T) bool {
	if one < other {
		one, other = other, one
	}

	// a negative difference means a signed type wrapped around, the real
	// difference is then larger than any tolerance T can hold
	d := one - other

	return d >= 0 && d <= t.tolerance
}

// Numeric converts values to and from float64 so they can be interpolated linearly.
type Numeric[T any] interface {
	ToFloat64(v T) float64
	FromFloat64(f float64) T
}

type numberCodec[T Number] struct{}

// NumberCodec returns the Numeric capability of a built-in number type. Integer
// types truncate toward zero on the way back and saturate at the bounds of T,
// NaN becomes 0. 64-bit integers beyond 2^53 lose precision in the float64 form.
func NumberCodec[T Number]() Numeric[T] {
	return numberCodec[T]{}
}

func (numberCodec[T]) ToFloat64(v T) float64 {
	return float64(v)
}

func (numberCodec[T]) FromFloat64(f float64) T {
	var zero T

	half := 0.5
	if T(half) != zero {
		return T(f)
	}

	if math.IsNaN(f) {
		return zero
	}

	bits := int(8 * unsafe.Sizeof(zero))

	lower, upper := 0.0, math.Ldexp(1, bits)
	minimum, maximum := zero, zero-1

	if zero-1 < zero {
		lower, upper = -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
		minimum = T(lower)
		maximum = -(minimum + 1)
	}

	switch {
	case f <= lower:
		return minimum
	case f >= upper:
		return maximum
	}

	return T(f)
}
