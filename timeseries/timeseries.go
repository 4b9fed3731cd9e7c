package timeseries

import (
	"math"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libtimeseries/sample"
	"github.com/sgostarter/libtimeseries/summarizer"
	"github.com/spf13/cast"
)

// TimeSeries derives one summarized point per interval of a window from its own
// copy of a sample series. The derived points are rebuilt from scratch on every
// capture, start change or summarizer change.
//
// A TimeSeries is not safe for concurrent use.
type TimeSeries[S comparable, D any] struct {
	logger l.Wrapper

	series     *sample.Series[S]
	summarizer summarizer.Summarizer[S, D]
	window     Window

	points []sample.Point[D]
}

// New clones series, later changes to series are not seen by the TimeSeries.
// It panics when series or sum is nil.
func New[S comparable, D any](series *sample.Series[S], window Window, sum summarizer.Summarizer[S, D],
	logger l.Wrapper) *TimeSeries[S, D] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "TimeSeries"))

	if sum == nil {
		logger.Error("no summarizer")

		panic("timeseries: no summarizer")
	}

	if series == nil {
		logger.Error("no series")

		panic("timeseries: no series")
	}

	ts := &TimeSeries[S, D]{
		logger:     logger,
		series:     series.Clone(),
		summarizer: sum,
		window:     window,
	}

	ts.update()

	return ts
}

// NewNumber creates a TimeSeries over a fresh number series built from cfg, so
// point queries interpolate linearly unless cfg says otherwise.
func NewNumber[S sample.Number, D any](cfg sample.Config[S], window Window, sum summarizer.Summarizer[S, D],
	logger l.Wrapper) *TimeSeries[S, D] {
	if cfg.Logger == nil {
		cfg.Logger = logger
	}

	return New[S, D](sample.NewNumberSeries[S](cfg), window, sum, logger)
}

// NewMeasured measures the value at the beginning of every interval.
func NewMeasured[S comparable](series *sample.Series[S], window Window, logger l.Wrapper) *TimeSeries[S, S] {
	return New[S, S](series, window, summarizer.ValueAt[S](summarizer.Beginning), logger)
}

func (ts *TimeSeries[S, D]) Capture(v S, at float64) error {
	if err := ts.series.Capture(v, at); err != nil {
		return err
	}

	ts.update()

	return nil
}

func (ts *TimeSeries[S, D]) CaptureNow(v S) error {
	return ts.Capture(v, sample.Now())
}

func (ts *TimeSeries[S, D]) Clear() {
	ts.series.Clear()

	ts.update()
}

// ClearAfter rolls the source series back to at so later samples can be replayed.
func (ts *TimeSeries[S, D]) ClearAfter(at float64) {
	ts.series.ClearAfter(at)

	ts.update()
}

func (ts *TimeSeries[S, D]) Start() float64 {
	return ts.window.Start
}

func (ts *TimeSeries[S, D]) SetStart(at float64) {
	ts.window.Start = at

	ts.update()
}

func (ts *TimeSeries[S, D]) Summarizer() summarizer.Summarizer[S, D] {
	return ts.summarizer
}

func (ts *TimeSeries[S, D]) SetSummarizer(sum summarizer.Summarizer[S, D]) {
	if sum == nil {
		ts.logger.Error("ignore nil summarizer")

		return
	}

	ts.summarizer = sum

	ts.update()
}

func (ts *TimeSeries[S, D]) Window() Window {
	return ts.window
}

func (ts *TimeSeries[S, D]) Span() sample.Range {
	return ts.window.Span()
}

// Series returns a copy of the source series.
func (ts *TimeSeries[S, D]) Series() *sample.Series[S] {
	return ts.series.Clone()
}

func (ts *TimeSeries[S, D]) Len() int {
	return len(ts.points)
}

func (ts *TimeSeries[S, D]) Points() []sample.Point[D] {
	return append([]sample.Point[D](nil), ts.points...)
}

func (ts *TimeSeries[S, D]) Values() []D {
	vs := make([]D, 0, len(ts.points))

	for _, p := range ts.points {
		vs = append(vs, p.Value)
	}

	return vs
}

// Summarize applies the current summarizer to every interval in [from, to).
func (ts *TimeSeries[S, D]) Summarize(from, to, interval float64) []sample.Point[D] {
	if !(interval > 0) || math.IsNaN(from) || math.IsInf(from, 0) || math.IsInf(to, 1) {
		return nil
	}

	var ps []sample.Point[D]

	for k := 0; ; k++ {
		at := from + float64(k)*interval
		if !(at < to) {
			break
		}

		ps = append(ps, ts.summarizer.Summarize(ts.series, interval, at))
	}

	return ps
}

func (ts *TimeSeries[S, D]) update() {
	span := ts.window.Span()

	ts.points = ts.Summarize(span.Lower, span.Upper, ts.window.Interval)

	ts.logger.WithFields(l.StringField("from", cast.ToString(span.Lower)), l.StringField("to", cast.ToString(span.Upper)),
		l.IntField("points", len(ts.points))).Debug("update")
}

func (ts *TimeSeries[S, D]) String() string {
	var ss strings.Builder

	for idx, p := range ts.points {
		if idx > 0 {
			ss.WriteString(", ")
		}

		ss.WriteString(p.String())
	}

	return ss.String()
}
