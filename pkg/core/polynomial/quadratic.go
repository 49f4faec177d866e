package polynomial

import (
	"math"

	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/interval"
	"github.com/itohio/splinekit/pkg/core/round"
	"github.com/itohio/splinekit/pkg/core/vec"
)

// Quadratic is the polynomial c0 + c1*x + c2*x^2 (spec §4.6).
type Quadratic struct {
	c0, c1, c2 float64
	Precision  int
}

// NewQuadratic builds a Quadratic polynomial, rounding its coefficients at
// construction. It fails with splinekit.ErrInvalidInput when any
// coefficient is NaN or +/-Inf (spec §7).
func NewQuadratic(c0, c1, c2 float64, precision ...int) (Quadratic, error) {
	if !round.AllFinite(c0, c1, c2) {
		return Quadratic{}, splinekit.New(splinekit.InvalidInput, "quadratic coefficient is not finite")
	}
	p := resolvePrecision(precision...)
	return newQuadratic(p, c0, c1, c2), nil
}

// MustQuadratic is like NewQuadratic but panics on failure; used internally
// to rebuild a Quadratic from coefficients already known finite.
func MustQuadratic(c0, c1, c2 float64, precision ...int) Quadratic {
	q, err := NewQuadratic(c0, c1, c2, precision...)
	if err != nil {
		panic(err)
	}
	return q
}

func newQuadratic(p int, c0, c1, c2 float64) Quadratic {
	return Quadratic{
		c0:        round.Round(c0, p),
		c1:        round.Round(c1, p),
		c2:        round.Round(c2, p),
		Precision: p,
	}
}

// QuadraticFromVector builds a Quadratic polynomial from a 3-component
// vector [c0, c1, c2].
func QuadraticFromVector(v vec.Vector3, precision ...int) Quadratic {
	return MustQuadratic(v.V0(), v.V1(), v.V2(), precision...)
}

func (p Quadratic) C0() float64 { return p.c0 }
func (p Quadratic) C1() float64 { return p.c1 }
func (p Quadratic) C2() float64 { return p.c2 }

// Solve evaluates the polynomial at x.
func (p Quadratic) Solve(x float64) float64 {
	return round.Round(p.c0+p.c1*x+p.c2*x*x, p.Precision)
}

// SolveInverse returns the roots of c0 + c1*x + c2*x^2 = y, ordered
// ascending. When c2 == 0 it delegates to the linear inversion.
func (p Quadratic) SolveInverse(y float64) []float64 {
	if p.c2 == 0 {
		return p.asLinear().SolveInverse(y)
	}
	d := p.c1*p.c1 - 4*p.c2*(p.c0-y)
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{round.Round(-p.c1/(2*p.c2), p.Precision)}
	default:
		sq := math.Sqrt(d)
		r1 := (-p.c1 - sq) / (2 * p.c2)
		r2 := (-p.c1 + sq) / (2 * p.c2)
		return sortedUniqueRoots([]float64{r1, r2}, p.Precision)
	}
}

func (p Quadratic) asLinear() Linear {
	return MustLinear(p.c0, p.c1, p.Precision)
}

// Derivative returns c1 + 2*c2*x.
func (p Quadratic) Derivative() Linear {
	return MustLinear(p.c1, 2*p.c2, p.Precision)
}

// Antiderivative returns k + c0*x + (c1/2)*x^2 + (c2/3)*x^3.
func (p Quadratic) Antiderivative(k float64) Cubic {
	return MustCubic(k, p.c0, p.c1/2, p.c2/3, p.Precision)
}

// Extreme returns the root of the derivative: the vertex of the parabola.
// ok is false when c1 == 0 and c2 == 0 (p is constant, no turning point).
// When c2 == 0 but c1 != 0, the spec's literal behavior is to report 0 as
// the extreme even though the derivative is a nonzero constant; this is
// preserved verbatim as an Open Question resolution (see DESIGN.md).
func (p Quadratic) Extreme() (float64, bool) {
	if p.c1 == 0 && p.c2 == 0 {
		return 0, false
	}
	if p.c2 == 0 {
		return 0, true
	}
	return round.Round(-p.c1/(2*p.c2), p.Precision), true
}

// Monotonicity classifies p, optionally restricted to interval i.
func (p Quadratic) Monotonicity(i ...interval.Interval) Monotonicity {
	if p.c1 == 0 && p.c2 == 0 {
		return Constant
	}
	if p.c2 == 0 {
		return p.asLinear().Monotonicity()
	}
	if len(i) == 0 {
		return MonotonicityNone
	}
	iv := i[0]
	if iv.Size() == 0 {
		return Constant
	}
	extreme, _ := p.Extreme()
	strictlyInside := interval.ContainsOptions{IncludeStart: false, IncludeEnd: false}
	if iv.Contains(extreme, strictlyInside) {
		return MonotonicityNone
	}
	return guaranteedMonotonicityFromComparison(p.Solve(iv.Start), p.Solve(iv.End))
}

// Domain returns the union of SolveInverse at yRange's endpoints, failing
// with splinekit.ErrInvalidInput when neither endpoint has a preimage.
func (p Quadratic) Domain(yRange interval.Interval) (interval.Interval, error) {
	roots := append(p.SolveInverse(yRange.Start), p.SolveInverse(yRange.End)...)
	if len(roots) == 0 {
		return interval.Interval{}, splinekit.New(splinekit.InvalidInput, "quadratic polynomial has no inverse domain")
	}
	return interval.FromMinMax(roots, p.Precision)
}

// Range returns the interval spanned by p over xDomain, accounting for the
// vertex when it falls inside xDomain.
func (p Quadratic) Range(xDomain interval.Interval) interval.Interval {
	values := []float64{p.Solve(xDomain.Start), p.Solve(xDomain.End)}
	if extreme, ok := p.Extreme(); ok && xDomain.Contains(extreme) {
		values = append(values, p.Solve(extreme))
	}
	return interval.Must(round.Round(minOf(values), p.Precision), round.Round(maxOf(values), p.Precision), p.Precision)
}

// Length returns the arc length of p over xDomain using the closed form
// F(x) = (d*sqrt(1+d^2) + ln|d+sqrt(1+d^2)|) / (4*c2), d(x) = c1 + 2*c2*x.
// When c2 == 0 it delegates to the linear length; a zero-size domain
// always has zero length.
func (p Quadratic) Length(xDomain interval.Interval) float64 {
	if xDomain.Size() == 0 {
		return 0
	}
	if p.c2 == 0 {
		return p.asLinear().Length(xDomain)
	}
	f := func(x float64) float64 {
		d := p.c1 + 2*p.c2*x
		root := math.Sqrt(1 + d*d)
		return (d*root + math.Log(math.Abs(d+root))) / (4 * p.c2)
	}
	return round.Round(f(xDomain.End)-f(xDomain.Start), p.Precision)
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
