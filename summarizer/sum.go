package summarizer

import "github.com/sgostarter/libtimeseries/sample"

// Sum adds up the stored points of each period, zero when there are none.
func Sum[S sample.Number]() Summarizer[S, S] {
	return Func[S, S](func(series *sample.Series[S], period, start float64) sample.Point[S] {
		var sum S

		for _, p := range series.PointsIn(periodRange(period, start)) {
			sum += p.Value
		}

		return sample.Point[S]{At: start, Value: sum}
	})
}
