package sample

import "github.com/sgostarter/i/l"

// Config describes a Series. The zero value is usable: default value is the
// zero value of T, tolerance is exact equality, the series is unbounded and the
// interpolator is chosen from Numeric.
type Config[T any] struct {
	// Default is returned by point queries on an empty series.
	Default T

	// Tolerance is used only when admitting new values. nil means exact equality.
	Tolerance Tolerance[T]

	// Numeric enables linear interpolation when Interpolator is nil.
	Numeric Numeric[T]

	// Interpolator is used for queries strictly between two stored points.
	// nil selects LinearInterpolator when Numeric is set, else StepInterpolator.
	Interpolator Interpolator[T]

	// MaxPoints bounds the number of stored points, the oldest ones are evicted
	// first. 0 means unbounded.
	MaxPoints int

	Logger l.Wrapper
}

func (cfg *Config[T]) init() {
	if cfg.Logger == nil {
		cfg.Logger = l.NewNopLoggerWrapper()
	}

	if cfg.MaxPoints < 0 {
		cfg.MaxPoints = 0
	}

	if cfg.Interpolator == nil {
		if cfg.Numeric != nil {
			cfg.Interpolator = NewLinearInterpolator[T](cfg.Numeric)
		} else {
			cfg.Interpolator = StepInterpolator[T]{}
		}
	}
}
