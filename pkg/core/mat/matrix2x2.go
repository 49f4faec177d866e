// Package mat provides immutable row-major 2x2/3x3/4x4 matrices with
// determinant, minor, row/column views, and Cramer's-rule system solving
// (spec §4.3). Every output is rounded to the operands' minimum precision
// unless an explicit precision is supplied, following pkg/core/vec.
package mat

import (
	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/round"
	"github.com/itohio/splinekit/pkg/core/vec"
)

// Matrix2x2 is a row-major 2x2 matrix: rows are [m00 m01] / [m10 m11].
type Matrix2x2 struct {
	m00, m01, m10, m11 float64
	Precision          int
}

// NewMatrix2x2 builds a Matrix2x2 from its entries, row by row. It fails
// with splinekit.ErrInvalidInput when any entry is NaN or +/-Inf
// (spec §7).
func NewMatrix2x2(m00, m01, m10, m11 float64, precision ...int) (Matrix2x2, error) {
	if !round.AllFinite(m00, m01, m10, m11) {
		return Matrix2x2{}, splinekit.New(splinekit.InvalidInput, "matrix2x2 entry is not finite")
	}
	p := resolvePrecision(precision...)
	return newMatrix2x2(p, m00, m01, m10, m11), nil
}

// MustMatrix2x2 is like NewMatrix2x2 but panics on failure; used internally
// to rebuild a Matrix2x2 from entries already known finite.
func MustMatrix2x2(m00, m01, m10, m11 float64, precision ...int) Matrix2x2 {
	m, err := NewMatrix2x2(m00, m01, m10, m11, precision...)
	if err != nil {
		panic(err)
	}
	return m
}

func newMatrix2x2(p int, m00, m01, m10, m11 float64) Matrix2x2 {
	return Matrix2x2{
		m00: round.Round(m00, p), m01: round.Round(m01, p),
		m10: round.Round(m10, p), m11: round.Round(m11, p),
		Precision: p,
	}
}

// FromRows2x2 builds a Matrix2x2 from two row vectors.
func FromRows2x2(r0, r1 vec.Vector2, precision ...int) Matrix2x2 {
	return MustMatrix2x2(r0.V0(), r0.V1(), r1.V0(), r1.V1(), precision...)
}

// FromColumns2x2 builds a Matrix2x2 from two column vectors.
func FromColumns2x2(c0, c1 vec.Vector2, precision ...int) Matrix2x2 {
	return MustMatrix2x2(c0.V0(), c1.V0(), c0.V1(), c1.V1(), precision...)
}

func (m Matrix2x2) M00() float64 { return m.m00 }
func (m Matrix2x2) M01() float64 { return m.m01 }
func (m Matrix2x2) M10() float64 { return m.m10 }
func (m Matrix2x2) M11() float64 { return m.m11 }

// ToRows returns the matrix's two rows as vectors.
func (m Matrix2x2) ToRows() [2]vec.Vector2 {
	return [2]vec.Vector2{
		vec.MustVector2(m.m00, m.m01, m.Precision),
		vec.MustVector2(m.m10, m.m11, m.Precision),
	}
}

// ToColumns returns the matrix's two columns as vectors.
func (m Matrix2x2) ToColumns() [2]vec.Vector2 {
	return [2]vec.Vector2{
		vec.MustVector2(m.m00, m.m10, m.Precision),
		vec.MustVector2(m.m01, m.m11, m.Precision),
	}
}

// SetRow returns a copy of m with row row replaced by v.
func (m Matrix2x2) SetRow(row int, v vec.Vector2) Matrix2x2 {
	switch row {
	case 0:
		return MustMatrix2x2(v.V0(), v.V1(), m.m10, m.m11, m.Precision)
	case 1:
		return MustMatrix2x2(m.m00, m.m01, v.V0(), v.V1(), m.Precision)
	default:
		panic("mat: row index out of range")
	}
}

// SetColumn returns a copy of m with column col replaced by v.
func (m Matrix2x2) SetColumn(col int, v vec.Vector2) Matrix2x2 {
	switch col {
	case 0:
		return MustMatrix2x2(v.V0(), m.m01, v.V1(), m.m11, m.Precision)
	case 1:
		return MustMatrix2x2(m.m00, v.V0(), m.m10, v.V1(), m.Precision)
	default:
		panic("mat: column index out of range")
	}
}

// Determinant returns m00*m11 - m01*m10, rounded to m's precision.
func (m Matrix2x2) Determinant() float64 {
	return round.Round(m.m00*m.m11-m.m01*m.m10, m.Precision)
}

// Minor returns the 1x1 cofactor matrix (as a scalar) obtained by deleting
// row and col.
func (m Matrix2x2) Minor(row, col int) float64 {
	switch {
	case row == 0 && col == 0:
		return m.m11
	case row == 0 && col == 1:
		return m.m10
	case row == 1 && col == 0:
		return m.m01
	case row == 1 && col == 1:
		return m.m00
	default:
		panic("mat: index out of range")
	}
}

// VectorProductLeft computes M*v.
func (m Matrix2x2) VectorProductLeft(v vec.Vector2, precision ...int) vec.Vector2 {
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	return vec.MustVector2(
		m.m00*v.V0()+m.m01*v.V1(),
		m.m10*v.V0()+m.m11*v.V1(),
		p,
	)
}

// VectorProductRight computes v*M (v as a row vector).
func (m Matrix2x2) VectorProductRight(v vec.Vector2, precision ...int) vec.Vector2 {
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	return vec.MustVector2(
		v.V0()*m.m00+v.V1()*m.m10,
		v.V0()*m.m01+v.V1()*m.m11,
		p,
	)
}

// SolveSystem solves M*x = v via Cramer's rule, failing with
// splinekit.ErrSingularMatrix when Determinant(M) rounds to zero.
func (m Matrix2x2) SolveSystem(v vec.Vector2, precision ...int) (vec.Vector2, error) {
	det := m.Determinant()
	if det == 0 {
		return vec.Vector2{}, singularMatrixError()
	}
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	mx := m.SetColumn(0, v)
	my := m.SetColumn(1, v)
	return vec.MustVector2(mx.Determinant()/det, my.Determinant()/det, p), nil
}
