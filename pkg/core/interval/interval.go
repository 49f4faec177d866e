// Package interval implements the closed interval [start, end] (spec §4.4):
// membership, clamping, lerp/normalize/remap, and set-like filtering.
package interval

import (
	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/round"
)

// Interval is an immutable closed interval [Start, End] with Start <= End.
type Interval struct {
	Start, End float64
	Precision  int
}

// New builds an Interval, failing with splinekit.ErrInvalidInput when start
// or end is NaN or +/-Inf (spec §7), or splinekit.ErrInvalidInterval when
// end < start.
func New(start, end float64, precision ...int) (Interval, error) {
	if !round.AllFinite(start, end) {
		return Interval{}, splinekit.New(splinekit.InvalidInput, "interval bound is not finite")
	}
	p := resolvePrecision(precision...)
	s, e := round.Round(start, p), round.Round(end, p)
	if e < s {
		return Interval{}, splinekit.New(splinekit.InvalidInterval, "end < start")
	}
	return Interval{Start: s, End: e, Precision: p}, nil
}

// Must is like New but panics on failure; useful for package-level
// constants built from literal, known-valid bounds.
func Must(start, end float64, precision ...int) Interval {
	i, err := New(start, end, precision...)
	if err != nil {
		panic(err)
	}
	return i
}

// FromMinMax builds the interval [min(values), max(values)].
func FromMinMax(values []float64, precision ...int) (Interval, error) {
	if len(values) == 0 {
		return Interval{}, splinekit.New(splinekit.InvalidInterval, "no values supplied")
	}
	if !round.AllFinite(values...) {
		return Interval{}, splinekit.New(splinekit.InvalidInput, "value is not finite")
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return New(lo, hi, precision...)
}

// Size returns End - Start.
func (i Interval) Size() float64 {
	return round.Round(i.End-i.Start, i.Precision)
}

// ContainsOptions controls whether Contains treats the endpoints as part of
// the interval. Both default to true (spec §4.4).
type ContainsOptions struct {
	IncludeStart bool
	IncludeEnd   bool
}

// DefaultContainsOptions is the spec's default: both endpoints included.
func DefaultContainsOptions() ContainsOptions {
	return ContainsOptions{IncludeStart: true, IncludeEnd: true}
}

// Contains reports whether x lies within i, honoring opts. Pass no opts to
// get the default (both endpoints included).
func (i Interval) Contains(x float64, opts ...ContainsOptions) bool {
	o := DefaultContainsOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.IncludeStart {
		if x < i.Start {
			return false
		}
	} else if x <= i.Start {
		return false
	}
	if o.IncludeEnd {
		if x > i.End {
			return false
		}
	} else if x >= i.End {
		return false
	}
	return true
}

// Clamp restricts x to [Start, End].
func (i Interval) Clamp(x float64) float64 {
	if x < i.Start {
		return i.Start
	}
	if x > i.End {
		return i.End
	}
	return round.Round(x, i.Precision)
}

// Lerp returns Start + t*Size().
func (i Interval) Lerp(t float64) float64 {
	return round.Round(i.Start+t*i.Size(), i.Precision)
}

// Normalize returns (x-Start)/Size().
func (i Interval) Normalize(x float64) float64 {
	return round.Round((x-i.Start)/i.Size(), i.Precision)
}

// Remap maps x from interval from into interval to: to.Lerp(from.Normalize(x)).
func Remap(x float64, from, to Interval) float64 {
	return to.Lerp(from.Normalize(x))
}

// Filter retains the elements of seq that lie within i, preserving order.
func (i Interval) Filter(seq []float64, opts ...ContainsOptions) []float64 {
	out := make([]float64, 0, len(seq))
	for _, x := range seq {
		if i.Contains(x, opts...) {
			out = append(out, x)
		}
	}
	return out
}
