package sample

import "fmt"

type Point[T any] struct {
	At    float64 `yaml:"at"`
	Value T       `yaml:"value"`
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v: %v)", p.At, p.Value)
}

// Range is a span of timestamps. Which ends are inclusive depends on the query
// it is passed to.
type Range struct {
	Lower float64
	Upper float64
}

func NewRange(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper}
}

func (r Range) Duration() float64 {
	return r.Upper - r.Lower
}

// Contains reports whether at lies in [Lower, Upper).
func (r Range) Contains(at float64) bool {
	return at >= r.Lower && at < r.Upper
}
