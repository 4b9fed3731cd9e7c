package summarizer

import "github.com/sgostarter/libtimeseries/sample"

func Min[S sample.Ordered]() Summarizer[S, S] {
	return extremum[S](func(candidate, current S) bool {
		return candidate < current
	})
}

func Max[S sample.Ordered]() Summarizer[S, S] {
	return extremum[S](func(candidate, current S) bool {
		return candidate > current
	})
}

// extremum scans [start, start+period-Epsilon] including the values computed at
// both edges, so a period without stored points still reports the signal.
func extremum[S sample.Ordered](better func(candidate, current S) bool) Summarizer[S, S] {
	return Func[S, S](func(series *sample.Series[S], period, start float64) sample.Point[S] {
		ps := series.PointsFor(sample.Range{Lower: start, Upper: (start + period) - Epsilon})

		v := ps[0].Value

		for _, p := range ps[1:] {
			if better(p.Value, v) {
				v = p.Value
			}
		}

		return sample.Point[S]{At: start, Value: v}
	})
}
