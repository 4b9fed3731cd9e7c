package sample

import "time"

// ReferenceEpoch is the zero point of every timestamp in this module.
var ReferenceEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// FromTime returns t as seconds since ReferenceEpoch.
func FromTime(t time.Time) float64 {
	return t.Sub(ReferenceEpoch).Seconds()
}

func ToTime(at float64) time.Time {
	return ReferenceEpoch.Add(time.Duration(at * float64(time.Second)))
}

func Now() float64 {
	return FromTime(time.Now())
}

func Seconds(d time.Duration) float64 {
	return d.Seconds()
}
