package summarizer

import "github.com/sgostarter/libtimeseries/sample"

const (
	// Epsilon is how far before the end of a period "the end" is measured.
	Epsilon = 1e-9

	DefaultSubSamples = 10
)

// Summarizer reduces the period [start, start+period) of a series to a single
// point stamped at start. Implementations hold no per-series state.
type Summarizer[S comparable, D any] interface {
	Summarize(series *sample.Series[S], period, start float64) sample.Point[D]
}

type Func[S comparable, D any] func(series *sample.Series[S], period, start float64) sample.Point[D]

func (f Func[S, D]) Summarize(series *sample.Series[S], period, start float64) sample.Point[D] {
	return f(series, period, start)
}

func periodRange(period, start float64) sample.Range {
	return sample.Range{Lower: start, Upper: start + period}
}
