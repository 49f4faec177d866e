package curve

import (
	"github.com/itohio/splinekit/pkg/core/interval"
	"github.com/itohio/splinekit/pkg/core/polynomial"
)

// fullDomain is the local parameter domain of every chain segment
// (spec §4.11: local t of chunk i spans [0, 1] once rescaled).
var fullDomain = interval.Must(0, 1)

// axis is one scalar component of a curve: an ordered chain of cubics, one
// per chunk, each covering an equal share of the global parameter
// t ∈ [0, 1] (spec §4.11).
type axis struct {
	name  string
	chain []polynomial.Cubic
}

// segmentCount is the number of chunks in the chain.
func (a axis) segmentCount() int { return len(a.chain) }

// segmentAt maps a global parameter t ∈ [0, 1] to the chain segment that
// owns it and t's local parameter within that segment.
func (a axis) segmentAt(t float64) (index int, local float64) {
	n := len(a.chain)
	index = int(t * float64(n))
	if index >= n {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}
	local = (t - float64(index)/float64(n)) * float64(n)
	return index, local
}

// solveAt evaluates the axis at global parameter t.
func (a axis) solveAt(t float64) float64 {
	index, local := a.segmentAt(t)
	return a.chain[index].Solve(local)
}

// cumulativeLength returns the arc length of a's chain from t=0 to t,
// summing whole-segment lengths for every segment fully before t and a
// partial length for the segment containing t.
func (a axis) cumulativeLength(t float64) float64 {
	index, local := a.segmentAt(t)
	total := 0.0
	for i := 0; i < index; i++ {
		total += a.chain[i].Length(fullDomain)
	}
	total += a.chain[index].Length(interval.Must(0, local))
	return total
}

// totalLength is cumulativeLength(1).
func (a axis) totalLength() float64 {
	total := 0.0
	for _, c := range a.chain {
		total += c.Length(fullDomain)
	}
	return total
}

// monotonicity classifies the axis across the whole chain: every segment
// must agree on a single non-constant direction (constant segments are
// compatible with either direction) for the chain to be monotone; a
// disagreement, or any segment that is locally non-monotone, yields
// polynomial.MonotonicityNone.
func (a axis) monotonicity() polynomial.Monotonicity {
	overall := polynomial.Constant
	set := false
	for _, c := range a.chain {
		m := c.Monotonicity(fullDomain)
		switch m {
		case polynomial.MonotonicityNone:
			return polynomial.MonotonicityNone
		case polynomial.Constant:
			continue
		default:
			if !set {
				overall, set = m, true
				continue
			}
			if m != overall {
				return polynomial.MonotonicityNone
			}
		}
	}
	return overall
}

// solveWhere inverts the axis for the given position, returning the first
// global t ∈ [0, 1] whose solveAt matches. Callers must have already
// confirmed the axis is monotone.
func (a axis) solveWhere(position float64) (float64, bool) {
	n := len(a.chain)
	for i, c := range a.chain {
		for _, root := range c.SolveInverse(position) {
			if root < 0 || root > 1 {
				continue
			}
			return (float64(i) + root) / float64(n), true
		}
	}
	return 0, false
}
