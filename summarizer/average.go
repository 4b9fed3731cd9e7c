package summarizer

import (
	"math/big"

	"github.com/sgostarter/libtimeseries/sample"
)

type intAverage[S sample.Integer] struct {
	signed bool
	sum    *big.Int
	count  int64
}

func newIntAverage[S sample.Integer]() *intAverage[S] {
	return &intAverage[S]{
		signed: ^S(0) < 0,
		sum:    new(big.Int),
	}
}

func (o *intAverage[S]) combine(d S) {
	z := new(big.Int)

	if o.signed {
		z.SetInt64(int64(d))
	} else {
		z.SetUint64(uint64(d))
	}

	o.sum.Add(o.sum, z)
	o.count++
}

// calc truncates toward zero.
func (o *intAverage[S]) calc() S {
	z := new(big.Int).Quo(o.sum, big.NewInt(o.count))

	if o.signed {
		return S(z.Int64())
	}

	return S(z.Uint64())
}

// subSampleTimes returns subSamples timestamps equally spaced over
// [start, start+period). It is empty when there is nothing to sample.
func subSampleTimes(subSamples int, period, start float64) []float64 {
	if subSamples <= 0 || !(period > 0) {
		return nil
	}

	step := period / float64(subSamples)

	ats := make([]float64, 0, subSamples)
	for k := 0; k < subSamples; k++ {
		ats = append(ats, start+float64(k)*step)
	}

	return ats
}

// AverageInteger averages subSamples point queries spread over each period.
// Without any sub-sample the series default value is reported.
func AverageInteger[S sample.Integer](subSamples int) Summarizer[S, S] {
	return Func[S, S](func(series *sample.Series[S], period, start float64) sample.Point[S] {
		ats := subSampleTimes(subSamples, period, start)
		if len(ats) == 0 {
			return sample.Point[S]{At: start, Value: series.Default()}
		}

		avg := newIntAverage[S]()

		for _, at := range ats {
			avg.combine(series.At(at))
		}

		return sample.Point[S]{At: start, Value: avg.calc()}
	})
}

// AverageFloat is AverageInteger for floating point series.
func AverageFloat[S sample.Float](subSamples int) Summarizer[S, S] {
	return Func[S, S](func(series *sample.Series[S], period, start float64) sample.Point[S] {
		ats := subSampleTimes(subSamples, period, start)
		if len(ats) == 0 {
			return sample.Point[S]{At: start, Value: series.Default()}
		}

		var sum float64

		for _, at := range ats {
			sum += float64(series.At(at))
		}

		return sample.Point[S]{At: start, Value: S(sum / float64(len(ats)))}
	})
}
