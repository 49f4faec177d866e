package polynomial

import (
	"math"
	"sort"

	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/interval"
	"github.com/itohio/splinekit/pkg/core/round"
	"github.com/itohio/splinekit/pkg/core/vec"
)

// Linear is the polynomial c0 + c1*x (spec §4.5).
type Linear struct {
	c0, c1    float64
	Precision int
}

// NewLinear builds a Linear polynomial, rounding its coefficients at
// construction. It fails with splinekit.ErrInvalidInput when either
// coefficient is NaN or +/-Inf (spec §7).
func NewLinear(c0, c1 float64, precision ...int) (Linear, error) {
	if !round.AllFinite(c0, c1) {
		return Linear{}, splinekit.New(splinekit.InvalidInput, "linear coefficient is not finite")
	}
	p := resolvePrecision(precision...)
	return newLinear(p, c0, c1), nil
}

// MustLinear is like NewLinear but panics on failure; used internally to
// rebuild a Linear from coefficients already known finite.
func MustLinear(c0, c1 float64, precision ...int) Linear {
	l, err := NewLinear(c0, c1, precision...)
	if err != nil {
		panic(err)
	}
	return l
}

func newLinear(p int, c0, c1 float64) Linear {
	return Linear{
		c0:        round.Round(c0, p),
		c1:        round.Round(c1, p),
		Precision: p,
	}
}

// LinearFromVector builds a Linear polynomial from a 2-component vector
// [c0, c1].
func LinearFromVector(v vec.Vector2, precision ...int) Linear {
	return MustLinear(v.V0(), v.V1(), precision...)
}

func (p Linear) C0() float64 { return p.c0 }
func (p Linear) C1() float64 { return p.c1 }

// Solve evaluates the polynomial at x.
func (p Linear) Solve(x float64) float64 {
	return round.Round(p.c0+p.c1*x, p.Precision)
}

// SolveInverse returns the unique root of c0 + c1*x = y when c1 != 0, or an
// empty slice when c1 == 0 (the equation is either unsatisfiable or
// universally satisfied; universal satisfiability is never signaled as a
// root set, spec §4.5).
func (p Linear) SolveInverse(y float64) []float64 {
	if p.c1 == 0 {
		return nil
	}
	return []float64{round.Round((y-p.c0)/p.c1, p.Precision)}
}

// Root returns SolveInverse(0).
func (p Linear) Root() []float64 {
	return p.SolveInverse(0)
}

// Derivative returns the constant c1, represented as a Linear with a zero
// slope.
func (p Linear) Derivative() Linear {
	return MustLinear(p.c1, 0, p.Precision)
}

// Antiderivative returns the quadratic k + c0*x + (c1/2)*x^2 whose
// derivative is p and whose value at 0 is k.
func (p Linear) Antiderivative(k float64) Quadratic {
	return MustQuadratic(k, p.c0, p.c1/2, p.Precision)
}

// Monotonicity classifies p as increasing, decreasing, or constant.
func (p Linear) Monotonicity() Monotonicity {
	switch {
	case p.c1 > 0:
		return Increasing
	case p.c1 < 0:
		return Decreasing
	default:
		return Constant
	}
}

// Domain returns the interval of x values whose image under p falls within
// yRange, failing with splinekit.ErrInvalidInput when p is constant (no
// x maps uniquely into yRange).
func (p Linear) Domain(yRange interval.Interval) (interval.Interval, error) {
	roots := p.SolveInverse(yRange.Start)
	roots = append(roots, p.SolveInverse(yRange.End)...)
	if len(roots) == 0 {
		return interval.Interval{}, splinekit.New(splinekit.InvalidInput, "linear polynomial has no inverse domain")
	}
	return interval.FromMinMax(roots, p.Precision)
}

// Range returns the interval spanned by p over xDomain.
func (p Linear) Range(xDomain interval.Interval) interval.Interval {
	return interval.Must(
		round.Min(p.Solve(xDomain.Start), p.Solve(xDomain.End)),
		round.MaxOf(p.Solve(xDomain.Start), p.Solve(xDomain.End)),
		p.Precision,
	)
}

// Length returns the arc length of p over xDomain: sqrt(1+c1^2)*size(xDomain).
func (p Linear) Length(xDomain interval.Interval) float64 {
	return round.Round(math.Sqrt(1+p.c1*p.c1)*xDomain.Size(), p.Precision)
}

// sortedUniqueRoots rounds, sorts ascending, and deduplicates exact ties.
// Shared by Quadratic and Cubic SolveInverse.
func sortedUniqueRoots(roots []float64, precision int) []float64 {
	rounded := make([]float64, len(roots))
	for i, r := range roots {
		rounded[i] = round.Round(r, precision)
	}
	sort.Float64s(rounded)
	out := rounded[:0]
	for i, r := range rounded {
		if i == 0 || r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return out
}
