package mat

import (
	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/round"
	"github.com/itohio/splinekit/pkg/core/vec"
)

// Matrix4x4 is a row-major 4x4 matrix. It is the shape of every spline
// characteristic matrix (spec §4.9): [c0 c1 c2 c3]^T = M * controls.
type Matrix4x4 struct {
	m         [4][4]float64
	Precision int
}

// NewMatrix4x4 builds a Matrix4x4 from its sixteen entries, row by row. It
// fails with splinekit.ErrInvalidInput when any entry is non-finite
// (spec §7).
func NewMatrix4x4(entries [4][4]float64, precision ...int) (Matrix4x4, error) {
	for _, row := range entries {
		if !round.AllFinite(row[:]...) {
			return Matrix4x4{}, splinekit.New(splinekit.InvalidInput, "matrix4x4 entry is not finite")
		}
	}
	p := resolvePrecision(precision...)
	m := Matrix4x4{Precision: p}
	for i := range entries {
		for j := range entries[i] {
			m.m[i][j] = round.Round(entries[i][j], p)
		}
	}
	return m, nil
}

// MustMatrix4x4 is like NewMatrix4x4 but panics on failure; used for
// literal, known-finite characteristic-matrix constants and for rebuilding
// a Matrix4x4 from entries already known finite.
func MustMatrix4x4(entries [4][4]float64, precision ...int) Matrix4x4 {
	m, err := NewMatrix4x4(entries, precision...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows4x4 builds a Matrix4x4 from four row vectors.
func FromRows4x4(r0, r1, r2, r3 vec.Vector4, precision ...int) Matrix4x4 {
	rows := [4]vec.Vector4{r0, r1, r2, r3}
	var entries [4][4]float64
	for i, r := range rows {
		c := r.Components()
		copy(entries[i][:], c)
	}
	return MustMatrix4x4(entries, precision...)
}

// FromColumns4x4 builds a Matrix4x4 from four column vectors.
func FromColumns4x4(c0, c1, c2, c3 vec.Vector4, precision ...int) Matrix4x4 {
	var entries [4][4]float64
	cols := [4]vec.Vector4{c0, c1, c2, c3}
	for j, c := range cols {
		comp := c.Components()
		for i := 0; i < 4; i++ {
			entries[i][j] = comp[i]
		}
	}
	return MustMatrix4x4(entries, precision...)
}

// Get returns the entry at row, col.
func (m Matrix4x4) Get(row, col int) float64 { return m.m[row][col] }

// ToRows returns the matrix's four rows as vectors.
func (m Matrix4x4) ToRows() [4]vec.Vector4 {
	var rows [4]vec.Vector4
	for i := 0; i < 4; i++ {
		rows[i] = vec.MustVector4(m.m[i][0], m.m[i][1], m.m[i][2], m.m[i][3], m.Precision)
	}
	return rows
}

// ToColumns returns the matrix's four columns as vectors.
func (m Matrix4x4) ToColumns() [4]vec.Vector4 {
	var cols [4]vec.Vector4
	for j := 0; j < 4; j++ {
		cols[j] = vec.MustVector4(m.m[0][j], m.m[1][j], m.m[2][j], m.m[3][j], m.Precision)
	}
	return cols
}

// SetRow returns a copy of m with row row replaced by v.
func (m Matrix4x4) SetRow(row int, v vec.Vector4) Matrix4x4 {
	rows := m.ToRows()
	rows[row] = v
	return FromRows4x4(rows[0], rows[1], rows[2], rows[3], m.Precision)
}

// SetColumn returns a copy of m with column col replaced by v.
func (m Matrix4x4) SetColumn(col int, v vec.Vector4) Matrix4x4 {
	cols := m.ToColumns()
	cols[col] = v
	return FromColumns4x4(cols[0], cols[1], cols[2], cols[3], m.Precision)
}

// Minor returns the 3x3 cofactor matrix obtained by deleting row and col.
func (m Matrix4x4) Minor(row, col int) Matrix3x3 {
	var vals [9]float64
	idx := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			vals[idx] = m.m[i][j]
			idx++
		}
	}
	return MustMatrix3x3(
		vals[0], vals[1], vals[2],
		vals[3], vals[4], vals[5],
		vals[6], vals[7], vals[8],
		m.Precision,
	)
}

// Determinant expands along the first row using 3x3 minors.
func (m Matrix4x4) Determinant() float64 {
	det := 0.0
	sign := 1.0
	for j := 0; j < 4; j++ {
		det += sign * m.m[0][j] * m.Minor(0, j).Determinant()
		sign = -sign
	}
	return round.Round(det, m.Precision)
}

// VectorProductLeft computes M*v.
func (m Matrix4x4) VectorProductLeft(v vec.Vector4, precision ...int) vec.Vector4 {
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	rows := m.ToRows()
	return vec.MustVector4(
		rows[0].Dot(v, round.Max), rows[1].Dot(v, round.Max),
		rows[2].Dot(v, round.Max), rows[3].Dot(v, round.Max),
		p,
	)
}

// VectorProductRight computes v*M.
func (m Matrix4x4) VectorProductRight(v vec.Vector4, precision ...int) vec.Vector4 {
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	cols := m.ToColumns()
	return vec.MustVector4(
		cols[0].Dot(v, round.Max), cols[1].Dot(v, round.Max),
		cols[2].Dot(v, round.Max), cols[3].Dot(v, round.Max),
		p,
	)
}

// SolveSystem solves M*x = v via Cramer's rule, failing with
// splinekit.ErrSingularMatrix when Determinant(M) rounds to zero.
func (m Matrix4x4) SolveSystem(v vec.Vector4, precision ...int) (vec.Vector4, error) {
	det := m.Determinant()
	if det == 0 {
		return vec.Vector4{}, singularMatrixError()
	}
	p := resolveDerivedPrecision(m.Precision, v.Precision, precision...)
	var x [4]float64
	for i := 0; i < 4; i++ {
		x[i] = m.SetColumn(i, v).Determinant() / det
	}
	return vec.MustVector4(x[0], x[1], x[2], x[3], p), nil
}
