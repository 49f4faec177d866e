package polynomial

import (
	"math"

	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/interval"
	"github.com/itohio/splinekit/pkg/core/round"
	"github.com/itohio/splinekit/pkg/core/vec"
)

// Cubic is the polynomial c0 + c1*x + c2*x^2 + c3*x^3 (spec §4.7).
type Cubic struct {
	c0, c1, c2, c3 float64
	Precision      int
}

// NewCubic builds a Cubic polynomial, rounding its coefficients at
// construction. It fails with splinekit.ErrInvalidInput when any
// coefficient is NaN or +/-Inf (spec §7).
func NewCubic(c0, c1, c2, c3 float64, precision ...int) (Cubic, error) {
	if !round.AllFinite(c0, c1, c2, c3) {
		return Cubic{}, splinekit.New(splinekit.InvalidInput, "cubic coefficient is not finite")
	}
	p := resolvePrecision(precision...)
	return newCubic(p, c0, c1, c2, c3), nil
}

// MustCubic is like NewCubic but panics on failure; used internally to
// rebuild a Cubic from coefficients already known finite.
func MustCubic(c0, c1, c2, c3 float64, precision ...int) Cubic {
	c, err := NewCubic(c0, c1, c2, c3, precision...)
	if err != nil {
		panic(err)
	}
	return c
}

func newCubic(p int, c0, c1, c2, c3 float64) Cubic {
	return Cubic{
		c0:        round.Round(c0, p),
		c1:        round.Round(c1, p),
		c2:        round.Round(c2, p),
		c3:        round.Round(c3, p),
		Precision: p,
	}
}

// CubicFromVector builds a Cubic polynomial from a 4-component vector
// [c0, c1, c2, c3].
func CubicFromVector(v vec.Vector4, precision ...int) Cubic {
	return MustCubic(v.V0(), v.V1(), v.V2(), v.V3(), precision...)
}

func (p Cubic) C0() float64 { return p.c0 }
func (p Cubic) C1() float64 { return p.c1 }
func (p Cubic) C2() float64 { return p.c2 }
func (p Cubic) C3() float64 { return p.c3 }

// Solve evaluates the polynomial at x.
func (p Cubic) Solve(x float64) float64 {
	return round.Round(p.c0+p.c1*x+p.c2*x*x+p.c3*x*x*x, p.Precision)
}

func (p Cubic) asQuadratic() Quadratic {
	return MustQuadratic(p.c0, p.c1, p.c2, p.Precision)
}

// Derivative returns c1 + 2*c2*x + 3*c3*x^2.
func (p Cubic) Derivative() Quadratic {
	return MustQuadratic(p.c1, 2*p.c2, 3*p.c3, p.Precision)
}

// SolveInverse returns the roots of c0 + c1*x + c2*x^2 + c3*x^3 = y,
// ordered ascending with exact ties deduplicated. When c3 == 0 it
// delegates to the quadratic inversion; otherwise it reduces to a
// depressed cubic t^3 + p*t + q = 0 and dispatches on the sign of the
// discriminant Δ = -4p^3 - 27q^2 (spec §4.7).
func (p Cubic) SolveInverse(y float64) []float64 {
	if p.c3 == 0 {
		return p.asQuadratic().SolveInverse(y)
	}
	b := p.c2 / p.c3
	c := p.c1 / p.c3
	d := (p.c0 - y) / p.c3

	dp := c - b*b/3
	dq := 2*b*b*b/27 - b*c/3 + d
	shift := b / 3

	delta := round.Round(-4*dp*dp*dp-27*dq*dq, p.Precision)

	var t []float64
	switch {
	case delta > 0:
		m := 2 * math.Sqrt(-dp/3)
		theta := math.Acos((3*dq/(2*dp))*math.Sqrt(-3/dp)) / 3
		t = []float64{
			m * math.Cos(theta),
			m * math.Cos(theta-2*math.Pi/3),
			m * math.Cos(theta-4*math.Pi/3),
		}
	case delta == 0:
		if dp == 0 && dq == 0 {
			t = []float64{0}
		} else {
			t = []float64{3 * dq / dp, -3 * dq / (2 * dp)}
		}
	default:
		disc := math.Sqrt(dq*dq/4 + dp*dp*dp/27)
		t = []float64{math.Cbrt(-dq/2+disc) + math.Cbrt(-dq/2-disc)}
	}

	roots := make([]float64, len(t))
	for i, ti := range t {
		roots[i] = ti - shift
	}
	return sortedUniqueRoots(roots, p.Precision)
}

// Extrema returns the roots of the derivative: 0, 1, or 2 values.
func (p Cubic) Extrema() []float64 {
	return p.Derivative().SolveInverse(0)
}

// Monotonicity classifies p, optionally restricted to interval i.
func (p Cubic) Monotonicity(i ...interval.Interval) Monotonicity {
	if p.c3 == 0 {
		return p.asQuadratic().Monotonicity(i...)
	}
	if len(i) == 0 {
		return MonotonicityNone
	}
	iv := i[0]
	if iv.Size() == 0 {
		return Constant
	}
	strictlyInside := interval.ContainsOptions{IncludeStart: false, IncludeEnd: false}
	for _, e := range p.Extrema() {
		if iv.Contains(e, strictlyInside) {
			return MonotonicityNone
		}
	}
	return guaranteedMonotonicityFromComparison(p.Solve(iv.Start), p.Solve(iv.End))
}

// Domain returns the union of SolveInverse at yRange's endpoints, failing
// with splinekit.ErrInvalidInput when neither endpoint has a preimage.
func (p Cubic) Domain(yRange interval.Interval) (interval.Interval, error) {
	roots := append(p.SolveInverse(yRange.Start), p.SolveInverse(yRange.End)...)
	if len(roots) == 0 {
		return interval.Interval{}, splinekit.New(splinekit.InvalidInput, "cubic polynomial has no inverse domain")
	}
	return interval.FromMinMax(roots, p.Precision)
}

// Range returns the interval spanned by p over xDomain, accounting for any
// extrema that fall inside xDomain.
func (p Cubic) Range(xDomain interval.Interval) interval.Interval {
	values := []float64{p.Solve(xDomain.Start), p.Solve(xDomain.End)}
	for _, e := range p.Extrema() {
		if xDomain.Contains(e) {
			values = append(values, p.Solve(e))
		}
	}
	return interval.Must(round.Round(minOf(values), p.Precision), round.Round(maxOf(values), p.Precision), p.Precision)
}

// Length returns the arc length of p over xDomain via fixed 9-point
// Gauss-Legendre quadrature on sqrt(1+p'(x)^2). When c3 == 0 it delegates
// to the quadratic length.
func (p Cubic) Length(xDomain interval.Interval) float64 {
	if xDomain.Size() == 0 {
		return 0
	}
	if p.c3 == 0 {
		return p.asQuadratic().Length(xDomain)
	}
	deriv := p.Derivative()
	integrand := func(x float64) float64 {
		d := deriv.Solve(x)
		return math.Sqrt(1 + d*d)
	}
	return round.Round(gaussLegendre9(integrand, xDomain.Start, xDomain.End), p.Precision)
}
