// Package spline implements the fixed characteristic matrices that turn a
// window of control scalars into the coefficients of a cubic polynomial
// (spec §4.9), plus the chunking and chaining needed to turn a full control
// sequence into an ordered cubic chain (spec §4.10/§4.11).
package spline

import "github.com/itohio/splinekit/pkg/core/mat"

// Family names a spline characteristic matrix and the window stride it
// consumes. It does not record the window layout: Hermite windows alternate
// position/tangent pairs (see Hermite), the other families hold four
// positions.
type Family struct {
	Name   string
	Matrix mat.Matrix4x4
	Stride int
}

// Bezier is the cubic Bezier characteristic matrix, stride 3: windows of
// four control points share one endpoint with the next window.
func Bezier() Family {
	return Family{
		Name: "bezier",
		Matrix: mat.MustMatrix4x4([4][4]float64{
			{1, 0, 0, 0},
			{-3, 3, 0, 0},
			{3, -6, 3, 0},
			{-1, 3, -3, 1},
		}),
		Stride: 3,
	}
}

// Hermite is the cubic Hermite characteristic matrix, stride 2. Each
// control window is [p0, m0, p1, m1] — a position/tangent pair per
// endpoint.
func Hermite() Family {
	return Family{
		Name: "hermite",
		Matrix: mat.MustMatrix4x4([4][4]float64{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{-3, -2, 3, -1},
			{2, 1, -2, 1},
		}),
		Stride: 2,
	}
}

// Cardinal is the Cardinal spline characteristic matrix parameterized by
// tension a, stride 1.
func Cardinal(a float64) Family {
	return Family{
		Name: "cardinal",
		Matrix: mat.MustMatrix4x4([4][4]float64{
			{0, 1, 0, 0},
			{-a, 0, a, 0},
			{2 * a, a - 3, 3 - 2*a, -a},
			{-a, 2 - a, a - 2, a},
		}),
		Stride: 1,
	}
}

// CatmullRom is Cardinal(0.5).
func CatmullRom() Family {
	f := Cardinal(0.5)
	f.Name = "catmullRom"
	return f
}

// Basis is the uniform cubic B-spline characteristic matrix, stride 1.
func Basis() Family {
	return Family{
		Name: "basis",
		Matrix: mat.MustMatrix4x4([4][4]float64{
			{1.0 / 6, 4.0 / 6, 1.0 / 6, 0},
			{-3.0 / 6, 0, 3.0 / 6, 0},
			{3.0 / 6, -6.0 / 6, 3.0 / 6, 0},
			{-1.0 / 6, 3.0 / 6, -3.0 / 6, 1.0 / 6},
		}),
		Stride: 1,
	}
}
