package summarizer

import "github.com/sgostarter/libtimeseries/sample"

// DurationIf reports how many seconds of each period the series held a value
// satisfying cond. Values are held from their timestamp until the next stored
// point; before the first point the first value applies.
func DurationIf[S comparable](cond func(S) bool) Summarizer[S, float64] {
	return Func[S, float64](func(series *sample.Series[S], period, start float64) sample.Point[float64] {
		if cond == nil || !(period > 0) {
			return sample.Point[float64]{At: start}
		}

		current := series.Default()

		if p, ok := series.SampleOnOrBefore(start); ok {
			current = p.Value
		} else if p, ok = series.Oldest(); ok {
			current = p.Value
		}

		var total float64

		last := start

		for _, p := range series.PointsIn(periodRange(period, start)) {
			if cond(current) {
				total += p.At - last
			}

			last = p.At
			current = p.Value
		}

		if cond(current) {
			total += (start + period) - last
		}

		return sample.Point[float64]{At: start, Value: total}
	})
}
