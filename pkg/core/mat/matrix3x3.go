package mat

import (
	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/round"
	"github.com/itohio/splinekit/pkg/core/vec"
)

// Matrix3x3 is a row-major 3x3 matrix.
type Matrix3x3 struct {
	m         [3][3]float64
	Precision int
}

// NewMatrix3x3 builds a Matrix3x3 from its nine entries, row by row. It
// fails with splinekit.ErrInvalidInput when any entry is non-finite
// (spec §7).
func NewMatrix3x3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float64,
	precision ...int,
) (Matrix3x3, error) {
	raw := [3][3]float64{{m00, m01, m02}, {m10, m11, m12}, {m20, m21, m22}}
	for _, row := range raw {
		if !round.AllFinite(row[:]...) {
			return Matrix3x3{}, splinekit.New(splinekit.InvalidInput, "matrix3x3 entry is not finite")
		}
	}
	p := resolvePrecision(precision...)
	m := Matrix3x3{Precision: p}
	for i := range raw {
		for j := range raw[i] {
			m.m[i][j] = round.Round(raw[i][j], p)
		}
	}
	return m, nil
}

// MustMatrix3x3 is like NewMatrix3x3 but panics on failure; used internally
// to rebuild a Matrix3x3 from entries already known finite.
func MustMatrix3x3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float64,
	precision ...int,
) Matrix3x3 {
	m, err := NewMatrix3x3(m00, m01, m02, m10, m11, m12, m20, m21, m22, precision...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows3x3 builds a Matrix3x3 from three row vectors.
func FromRows3x3(r0, r1, r2 vec.Vector3, precision ...int) Matrix3x3 {
	return MustMatrix3x3(
		r0.V0(), r0.V1(), r0.V2(),
		r1.V0(), r1.V1(), r1.V2(),
		r2.V0(), r2.V1(), r2.V2(),
		precision...,
	)
}

// FromColumns3x3 builds a Matrix3x3 from three column vectors.
func FromColumns3x3(c0, c1, c2 vec.Vector3, precision ...int) Matrix3x3 {
	return MustMatrix3x3(
		c0.V0(), c1.V0(), c2.V0(),
		c0.V1(), c1.V1(), c2.V1(),
		c0.V2(), c1.V2(), c2.V2(),
		precision...,
	)
}

// Get returns the entry at row, col.
func (m Matrix3x3) Get(row, col int) float64 { return m.m[row][col] }

// ToRows returns the matrix's three rows as vectors.
func (m Matrix3x3) ToRows() [3]vec.Vector3 {
	return [3]vec.Vector3{
		vec.MustVector3(m.m[0][0], m.m[0][1], m.m[0][2], m.Precision),
		vec.MustVector3(m.m[1][0], m.m[1][1], m.m[1][2], m.Precision),
		vec.MustVector3(m.m[2][0], m.m[2][1], m.m[2][2], m.Precision),
	}
}

// ToColumns returns the matrix's three columns as vectors.
func (m Matrix3x3) ToColumns() [3]vec.Vector3 {
	return [3]vec.Vector3{
		vec.MustVector3(m.m[0][0], m.m[1][0], m.m[2][0], m.Precision),
		vec.MustVector3(m.m[0][1], m.m[1][1], m.m[2][1], m.Precision),
		vec.MustVector3(m.m[0][2], m.m[1][2], m.m[2][2], m.Precision),
	}
}

// SetRow returns a copy of m with row row replaced by v.
func (m Matrix3x3) SetRow(row int, v vec.Vector3) Matrix3x3 {
	rows := m.ToRows()
	rows[row] = v
	return FromRows3x3(rows[0], rows[1], rows[2], m.Precision)
}

// SetColumn returns a copy of m with column col replaced by v.
func (m Matrix3x3) SetColumn(col int, v vec.Vector3) Matrix3x3 {
	cols := m.ToColumns()
	cols[col] = v
	return FromColumns3x3(cols[0], cols[1], cols[2], m.Precision)
}

// Minor returns the 2x2 cofactor matrix obtained by deleting row and col.
func (m Matrix3x3) Minor(row, col int) Matrix2x2 {
	var vals [4]float64
	idx := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			vals[idx] = m.m[i][j]
			idx++
		}
	}
	return MustMatrix2x2(vals[0], vals[1], vals[2], vals[3], m.Precision)
}

// Determinant expands along the first row using 2x2 minors.
func (m Matrix3x3) Determinant() float64 {
	det := m.m[0][0]*m.Minor(0, 0).Determinant() -
		m.m[0][1]*m.Minor(0, 1).Determinant() +
		m.m[0][2]*m.Minor(0, 2).Determinant()
	return round.Round(det, m.Precision)
}

// VectorProductLeft computes M*v.
func (m Matrix3x3) VectorProductLeft(v vec.Vector3, precision ...int) vec.Vector3 {
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	rows := m.ToRows()
	return vec.MustVector3(rows[0].Dot(v, round.Max), rows[1].Dot(v, round.Max), rows[2].Dot(v, round.Max), p)
}

// VectorProductRight computes v*M.
func (m Matrix3x3) VectorProductRight(v vec.Vector3, precision ...int) vec.Vector3 {
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	cols := m.ToColumns()
	return vec.MustVector3(cols[0].Dot(v, round.Max), cols[1].Dot(v, round.Max), cols[2].Dot(v, round.Max), p)
}

// SolveSystem solves M*x = v via Cramer's rule, failing with
// splinekit.ErrSingularMatrix when Determinant(M) rounds to zero.
func (m Matrix3x3) SolveSystem(v vec.Vector3, precision ...int) (vec.Vector3, error) {
	det := m.Determinant()
	if det == 0 {
		return vec.Vector3{}, singularMatrixError()
	}
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	mx := m.SetColumn(0, v)
	my := m.SetColumn(1, v)
	mz := m.SetColumn(2, v)
	return vec.MustVector3(mx.Determinant()/det, my.Determinant()/det, mz.Determinant()/det, p), nil
}
