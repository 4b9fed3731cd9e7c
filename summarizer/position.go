package summarizer

import "github.com/sgostarter/libtimeseries/sample"

type Position int

const (
	Beginning Position = iota
	Middle
	End
)

func (p Position) String() string {
	switch p {
	case Beginning:
		return "beginning"
	case Middle:
		return "middle"
	case End:
		return "end"
	}

	return "unknown"
}

type valueAt[S comparable] struct {
	position Position
}

// ValueAt measures the series at the beginning, the middle or just before the
// end of each period.
func ValueAt[S comparable](position Position) Summarizer[S, S] {
	return valueAt[S]{position: position}
}

func (impl valueAt[S]) Summarize(series *sample.Series[S], period, start float64) sample.Point[S] {
	at := start

	switch impl.position {
	case Middle:
		at = start + period/2
	case End:
		at = (start + period) - Epsilon
	}

	return sample.Point[S]{At: start, Value: series.At(at)}
}
