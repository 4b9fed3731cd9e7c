package summarizer

import "github.com/sgostarter/libtimeseries/sample"

// Count counts the stored points of each period.
func Count[S comparable]() Summarizer[S, int] {
	return CountIf[S](nil)
}

// CountIf counts the stored points of each period whose value satisfies cond.
// A nil cond counts every point.
func CountIf[S comparable](cond func(S) bool) Summarizer[S, int] {
	return Func[S, int](func(series *sample.Series[S], period, start float64) sample.Point[int] {
		var n int

		for _, p := range series.PointsIn(periodRange(period, start)) {
			if cond == nil || cond(p.Value) {
				n++
			}
		}

		return sample.Point[int]{At: start, Value: n}
	})
}
