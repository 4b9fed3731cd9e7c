package timeseries

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libtimeseries/sample"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWindow = fmt.Errorf("invalid window: %w", commerr.ErrInvalidArgument)
)

// Window is a fixed origin span cut into fixed intervals. All values are in
// seconds. A positive Duration extends forward from Start, a negative one ends
// at Start and extends backward.
type Window struct {
	Start    float64
	Duration float64
	Interval float64
}

// Span resolves the direction of the window into [Lower, Upper).
func (w Window) Span() sample.Range {
	if w.Duration > 0 {
		return sample.Range{Lower: w.Start, Upper: w.Start + w.Duration}
	}

	return sample.Range{Lower: w.Start - math.Abs(w.Duration), Upper: w.Start}
}

// Periods returns how many intervals the window is cut into.
func (w Window) Periods() int {
	span := w.Span()

	if !(w.Interval > 0) || !(span.Upper > span.Lower) || math.IsInf(span.Duration(), 0) {
		return 0
	}

	n := 0

	for at := span.Lower; at < span.Upper; at = span.Lower + float64(n)*w.Interval {
		n++
	}

	return n
}

// WindowConfig is the YAML form of a Window. Duration and Interval are Go
// duration strings such as "90s" or "-1h"; Start is seconds since
// sample.ReferenceEpoch.
type WindowConfig struct {
	Start    float64 `yaml:"start"`
	Duration string  `yaml:"duration"`
	Interval string  `yaml:"interval"`
}

func (cfg WindowConfig) Window() (w Window, err error) {
	var errs *multierror.Error

	duration, e := cast.ToDurationE(cfg.Duration)
	if e != nil {
		errs = multierror.Append(errs, fmt.Errorf("duration %q: %v: %w", cfg.Duration, e, ErrInvalidWindow))
	}

	interval, e := cast.ToDurationE(cfg.Interval)
	if e != nil {
		errs = multierror.Append(errs, fmt.Errorf("interval %q: %v: %w", cfg.Interval, e, ErrInvalidWindow))
	} else if interval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("interval %q must be positive: %w", cfg.Interval, ErrInvalidWindow))
	}

	if math.IsNaN(cfg.Start) || math.IsInf(cfg.Start, 0) {
		errs = multierror.Append(errs, fmt.Errorf("start %v: %w", cfg.Start, ErrInvalidWindow))
	}

	if err = errs.ErrorOrNil(); err != nil {
		return
	}

	w = Window{
		Start:    cfg.Start,
		Duration: duration.Seconds(),
		Interval: interval.Seconds(),
	}

	return
}

func ParseWindow(d []byte) (w Window, err error) {
	var cfg WindowConfig

	err = yaml.Unmarshal(d, &cfg)
	if err != nil {
		return
	}

	return cfg.Window()
}
