package sample

// Interpolator produces a value that is fraction of the way from start to end.
// A fraction of 0 means start and 1 means end.
type Interpolator[T any] interface {
	Interpolate(fraction float64, start, end T) T
}

type InterpolatorFunc[T any] func(fraction float64, start, end T) T

func (f InterpolatorFunc[T]) Interpolate(fraction float64, start, end T) T {
	return f(fraction, start, end)
}

// RoundingInterpolator switches from start to end at the midpoint.
type RoundingInterpolator[T any] struct{}

func (RoundingInterpolator[T]) Interpolate(fraction float64, start, end T) T {
	if fraction < 0.5 {
		return start
	}

	return end
}

// StepInterpolator holds start until end is reached exactly.
type StepInterpolator[T any] struct{}

func (StepInterpolator[T]) Interpolate(fraction float64, start, end T) T {
	if fraction < 1.0 {
		return start
	}

	return end
}

// LinearInterpolator interpolates through float64. Without a Numeric capability
// it behaves like RoundingInterpolator.
type LinearInterpolator[T any] struct {
	numeric  Numeric[T]
	fallback RoundingInterpolator[T]
}

func NewLinearInterpolator[T any](numeric Numeric[T]) *LinearInterpolator[T] {
	return &LinearInterpolator[T]{
		numeric: numeric,
	}
}

func NewNumberLinearInterpolator[T Number]() *LinearInterpolator[T] {
	return NewLinearInterpolator[T](NumberCodec[T]())
}

func (impl *LinearInterpolator[T]) Interpolate(fraction float64, start, end T) T {
	if impl.numeric == nil {
		return impl.fallback.Interpolate(fraction, start, end)
	}

	s := impl.numeric.ToFloat64(start)
	e := impl.numeric.ToFloat64(end)

	return impl.numeric.FromFloat64(s + fraction*(e-s))
}
