// Package curve implements multi-axis parametric curves over a shared
// cubic chain per axis, arc-length reparametrization, and axis inversion
// (spec §4.12).
package curve

import (
	"context"
	"sort"

	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/internal/xlog"
	"github.com/itohio/splinekit/pkg/core/polynomial"
	"github.com/itohio/splinekit/pkg/core/round"
	"github.com/itohio/splinekit/pkg/spline"
)

// Curve is a multi-axis parametric cubic spline: every axis shares the same
// global parameter t ∈ [0, 1] and the same chunk count, and the curve
// carries one eagerly-built arc-length table used to reparametrize that
// shared t by normalized arc length (spec §4.12).
type Curve struct {
	axes      []axis
	index     map[string]int
	length    lengthTable
	Precision int
}

// Axes returns the curve's axis names, in construction order.
func (c *Curve) Axes() []string {
	names := make([]string, len(c.axes))
	for i, a := range c.axes {
		names[i] = a.name
	}
	return names
}

func newCurve(f spline.Family, controls map[string][]float64, precision ...int) (*Curve, error) {
	p := resolvePrecision(precision...)
	if len(controls) == 0 {
		return nil, splinekit.New(splinekit.InvalidInput, "curve requires at least one axis")
	}

	names := make([]string, 0, len(controls))
	for name := range controls {
		names = append(names, name)
	}
	sort.Strings(names)

	axes := make([]axis, 0, len(names))
	segmentCount := -1
	for _, name := range names {
		cubics, err := spline.ChunkCoefficients(f, controls[name], p)
		if err != nil {
			return nil, err
		}
		if segmentCount == -1 {
			segmentCount = len(cubics)
		} else if len(cubics) != segmentCount {
			return nil, splinekit.New(splinekit.InvalidInput, "axes produced different segment counts")
		}
		axes = append(axes, axis{name: name, chain: cubics})
	}

	xlog.Log.Debug().Str("family", f.Name).Int("axes", len(axes)).Int("segments", segmentCount).Msg("building curve length table")
	lt, err := buildLengthTable(context.Background(), axes, segmentCount)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(axes))
	for i, a := range axes {
		idx[a.name] = i
	}

	return &Curve{axes: axes, index: idx, length: lt, Precision: p}, nil
}

// CreateBezierCurve builds a Curve from per-axis Bezier control points.
func CreateBezierCurve(controls map[string][]float64, precision ...int) (*Curve, error) {
	return newCurve(spline.Bezier(), controls, precision...)
}

// CreateHermiteCurve builds a Curve from per-axis Hermite control/tangent
// windows ([p0, m0, p1, m1, ...]).
func CreateHermiteCurve(controls map[string][]float64, precision ...int) (*Curve, error) {
	return newCurve(spline.Hermite(), controls, precision...)
}

// CreateCardinalCurve builds a Curve from per-axis control points using the
// Cardinal family with tension a. Endpoint duplication (spline.DuplicateEndpoints)
// is the caller's responsibility, matching spline.ChunkCoefficients's direct
// contract.
func CreateCardinalCurve(a float64, controls map[string][]float64, precision ...int) (*Curve, error) {
	return newCurve(spline.Cardinal(a), controls, precision...)
}

// CreateCatmullRomCurve builds a Curve using Cardinal(0.5).
func CreateCatmullRomCurve(controls map[string][]float64, precision ...int) (*Curve, error) {
	return newCurve(spline.CatmullRom(), controls, precision...)
}

// CreateBasisCurve builds a Curve using the uniform cubic B-spline family.
func CreateBasisCurve(controls map[string][]float64, precision ...int) (*Curve, error) {
	return newCurve(spline.Basis(), controls, precision...)
}

// PositionAt evaluates every axis at a parameter blended between the raw
// input and its length-normalized lookup: t = (1-normalize)*input +
// normalize*lookup(input) (spec §4.12). input must lie in [0, 1].
func (c *Curve) PositionAt(input, normalize float64, precision ...int) (map[string]float64, error) {
	if !round.AllFinite(input, normalize) {
		return nil, splinekit.New(splinekit.InvalidInput, "positionAt input or normalize is not finite")
	}
	if input < 0 || input > 1 {
		return nil, splinekit.New(splinekit.InvalidInput, "positionAt input outside [0,1]")
	}
	p := resolvePrecisionOr(c.Precision, precision...)
	t := (1-normalize)*input + normalize*c.length.lookup(input)
	out := make(map[string]float64, len(c.axes))
	for _, a := range c.axes {
		out[a.name] = round.Round(a.solveAt(t), p)
	}
	return out, nil
}

// SolveWhere inverts the named axis for position, requiring that the axis's
// whole-chain monotonicity across t ∈ [0, 1] is not MonotonicityNone;
// otherwise it fails with splinekit.ErrNonMonotonicAxis. Constant segments,
// and a wholly constant axis, pass this check. It then returns the first
// t at which that axis reaches position and every other axis's value at
// that t, or splinekit.ErrRootUnsolvable when no t ∈ [0,1] matches
// (spec §4.12, tightened per the "Open Question" resolution in DESIGN.md).
func (c *Curve) SolveWhere(axisName string, position float64, precision ...int) (map[string]float64, error) {
	if !round.Finite(position) {
		return nil, splinekit.New(splinekit.InvalidInput, "solveWhere position is not finite")
	}
	i, ok := c.index[axisName]
	if !ok {
		return nil, splinekit.New(splinekit.InvalidInput, "unknown axis: "+axisName)
	}
	a := c.axes[i]
	if a.monotonicity() == polynomial.MonotonicityNone {
		return nil, splinekit.New(splinekit.NonMonotonicAxis, "axis "+axisName+" is not monotone across [0,1]")
	}
	t, ok := a.solveWhere(position)
	if !ok {
		return nil, splinekit.New(splinekit.RootUnsolvable, "no parameter in [0,1] reaches the requested position")
	}
	p := resolvePrecisionOr(c.Precision, precision...)
	out := make(map[string]float64, len(c.axes))
	for _, other := range c.axes {
		out[other.name] = round.Round(other.solveAt(t), p)
	}
	return out, nil
}
