package sample

import (
	"math"
	"sort"
	"strings"

	"github.com/gammazero/deque"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Series stores samples captured in temporal order, keeping only the points
// needed to reproduce the signal within the configured tolerance. Queries
// always return a value, interpolating between stored points when needed.
//
// A Series is not safe for concurrent use.
type Series[T comparable] struct {
	logger l.Wrapper
	cfg    Config[T]

	points *deque.Deque[Point[T]]
}

// NewSeries creates a series for any comparable type. Linear interpolation is
// used only if cfg carries a Numeric capability.
func NewSeries[T comparable](cfg Config[T]) *Series[T] {
	cfg.init()

	return &Series[T]{
		logger: cfg.Logger.WithFields(l.StringField(l.ClsKey, "Series")),
		cfg:    cfg,
		points: deque.New[Point[T]](),
	}
}

// NewNumberSeries creates a series for a built-in number type, interpolating
// linearly unless cfg says otherwise.
func NewNumberSeries[T Number](cfg Config[T]) *Series[T] {
	if cfg.Numeric == nil {
		cfg.Numeric = NumberCodec[T]()
	}

	return NewSeries[T](cfg)
}

func (s *Series[T]) Default() T {
	return s.cfg.Default
}

func (s *Series[T]) Interpolator() Interpolator[T] {
	return s.cfg.Interpolator
}

func (s *Series[T]) Len() int {
	return s.points.Len()
}

// Points returns a copy of the stored points in timestamp order.
func (s *Series[T]) Points() []Point[T] {
	ps := make([]Point[T], 0, s.points.Len())

	for idx := 0; idx < s.points.Len(); idx++ {
		ps = append(ps, s.points.At(idx))
	}

	return ps
}

func (s *Series[T]) Oldest() (p Point[T], ok bool) {
	if s.points.Len() == 0 {
		return
	}

	return s.points.Front(), true
}

func (s *Series[T]) Newest() (p Point[T], ok bool) {
	if s.points.Len() == 0 {
		return
	}

	return s.points.Back(), true
}

// TimeRange returns the timestamps of the first and last points, or the zero
// Range when the series is empty.
func (s *Series[T]) TimeRange() Range {
	if s.points.Len() == 0 {
		return Range{}
	}

	return Range{Lower: s.points.Front().At, Upper: s.points.Back().At}
}

// Clone returns an independent copy. Strategies are shared, points are not.
func (s *Series[T]) Clone() *Series[T] {
	points := deque.New[Point[T]]()

	for idx := 0; idx < s.points.Len(); idx++ {
		points.PushBack(s.points.At(idx))
	}

	return &Series[T]{
		logger: s.logger,
		cfg:    s.cfg,
		points: points,
	}
}

func (s *Series[T]) Clear() {
	s.points.Clear()
}

// ClearAfter drops every point later than at.
func (s *Series[T]) ClearAfter(at float64) {
	for s.points.Len() > 0 && s.points.Back().At > at {
		s.points.PopBack()
	}
}

func (s *Series[T]) CaptureNow(v T) error {
	return s.Capture(v, Now())
}

// Capture admits v at the timestamp at. Timestamps must not go backwards; a
// capture at the timestamp of the newest point replaces it. When the new value
// and the two newest stored values are all within tolerance of each other, the
// newest stored point is redundant and is replaced instead of appended to.
func (s *Series[T]) Capture(v T, at float64) error {
	if !finite(at) {
		return ErrInvalidTimestamp
	}

	p := Point[T]{At: at, Value: v}

	n := s.points.Len()
	if n == 0 {
		s.points.PushBack(p)

		return nil
	}

	last := s.points.Back()

	if at < last.At {
		s.logger.WithFields(l.StringField("at", cast.ToString(at)),
			l.StringField("last", cast.ToString(last.At))).Debug("capture out of order")

		return ErrCaptureOutOfOrder
	}

	if at == last.At {
		s.points.Set(n-1, p)

		return nil
	}

	if n == 1 {
		s.push(p)

		return nil
	}

	if s.redundant(v, last.Value, s.points.At(n-2).Value) {
		s.points.Set(n-1, p)

		return nil
	}

	s.push(p)

	return nil
}

func (s *Series[T]) push(p Point[T]) {
	s.points.PushBack(p)

	for s.cfg.MaxPoints > 0 && s.points.Len() > s.cfg.MaxPoints {
		evicted := s.points.PopFront()

		s.logger.WithFields(l.StringField("at", cast.ToString(evicted.At)),
			l.IntField("maxPoints", s.cfg.MaxPoints)).Debug("evict oldest point")
	}
}

func (s *Series[T]) redundant(v, last, lastButOne T) bool {
	if s.cfg.Tolerance == nil {
		return v == last && v == lastButOne
	}

	return s.cfg.Tolerance.InTolerance(v, last) && s.cfg.Tolerance.InTolerance(v, lastButOne) &&
		s.cfg.Tolerance.InTolerance(last, lastButOne)
}

// At returns the value of the series at the timestamp at. Before the first
// point it is the first value, after the last point it is the last value, and
// between two points it is interpolated.
func (s *Series[T]) At(at float64) T {
	n := s.points.Len()

	switch {
	case n == 0:
		return s.cfg.Default
	case n == 1:
		return s.points.Front().Value
	case math.IsNaN(at):
		return s.cfg.Default
	}

	first := s.points.Front()
	if at <= first.At {
		return first.Value
	}

	last := s.points.Back()
	if at >= last.At {
		return last.Value
	}

	idx := sort.Search(n, func(i int) bool {
		return s.points.At(i).At >= at
	})

	b := s.points.At(idx)
	if b.At == at {
		return b.Value
	}

	a := s.points.At(idx - 1)

	return s.cfg.Interpolator.Interpolate((at-a.At)/(b.At-a.At), a.Value, b.Value)
}

// PointsIn returns the stored points with timestamps in [r.Lower, r.Upper).
func (s *Series[T]) PointsIn(r Range) []Point[T] {
	n := s.points.Len()

	idx := sort.Search(n, func(i int) bool {
		return s.points.At(i).At >= r.Lower
	})

	var ps []Point[T]

	for ; idx < n; idx++ {
		p := s.points.At(idx)
		if p.At >= r.Upper {
			break
		}

		ps = append(ps, p)
	}

	return ps
}

// PointsFor is PointsIn with a point guaranteed at exactly r.Lower and at
// exactly r.Upper, computed with At when nothing is stored there.
func (s *Series[T]) PointsFor(r Range) []Point[T] {
	stored := s.PointsIn(r)

	ps := make([]Point[T], 0, len(stored)+2)

	if len(stored) == 0 || stored[0].At != r.Lower {
		ps = append(ps, Point[T]{At: r.Lower, Value: s.At(r.Lower)})
	}

	ps = append(ps, stored...)

	if ps[len(ps)-1].At != r.Upper {
		ps = append(ps, Point[T]{At: r.Upper, Value: s.At(r.Upper)})
	}

	return ps
}

// SampleOnOrBefore returns the newest stored point not later than at.
func (s *Series[T]) SampleOnOrBefore(at float64) (p Point[T], ok bool) {
	idx := sort.Search(s.points.Len(), func(i int) bool {
		return s.points.At(i).At > at
	})

	if idx == 0 {
		return
	}

	return s.points.At(idx - 1), true
}

// Resample queries the series every interval seconds in [from, to).
func (s *Series[T]) Resample(from, to, interval float64) []Point[T] {
	if !(interval > 0) || !finite(from) || math.IsInf(to, 1) {
		return nil
	}

	var ps []Point[T]

	for k := 0; ; k++ {
		at := from + float64(k)*interval
		if !(at < to) {
			break
		}

		ps = append(ps, Point[T]{At: at, Value: s.At(at)})
	}

	return ps
}

func (s *Series[T]) ResampleFor(from, duration, interval float64) []Point[T] {
	return s.Resample(from, from+duration, interval)
}

// MarshalYAML renders the stored points as a sequence of at/value pairs.
func (s *Series[T]) MarshalYAML() (interface{}, error) {
	return s.Points(), nil
}

func (s *Series[T]) String() string {
	var ss strings.Builder

	for idx := 0; idx < s.points.Len(); idx++ {
		if idx > 0 {
			ss.WriteString(", ")
		}

		ss.WriteString(s.points.At(idx).String())
	}

	return ss.String()
}

func finite(at float64) bool {
	return !math.IsNaN(at) && !math.IsInf(at, 0)
}
