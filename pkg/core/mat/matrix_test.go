package mat

import (
	"errors"
	"math"
	"testing"

	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix2x2Determinant(t *testing.T) {
	m := MustMatrix2x2(1, 2, 3, 4)
	assert.Equal(t, -2.0, m.Determinant())
}

func TestNewMatrix2x2RejectsNonFinite(t *testing.T) {
	_, err := NewMatrix2x2(math.NaN(), 0, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInput))
}

func TestMatrix2x2SolveSystem(t *testing.T) {
	m := MustMatrix2x2(2, 0, 0, 2)
	x, err := m.SolveSystem(vec.MustVector2(4, 6))
	require.NoError(t, err)
	assert.Equal(t, 2.0, x.V0())
	assert.Equal(t, 3.0, x.V1())
}

func TestMatrix2x2SolveSystemSingular(t *testing.T) {
	m := MustMatrix2x2(1, 2, 2, 4)
	_, err := m.SolveSystem(vec.MustVector2(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrSingularMatrix))
}

func TestMatrix2x2Minor(t *testing.T) {
	m := MustMatrix2x2(1, 2, 3, 4)
	assert.Equal(t, 4.0, m.Minor(0, 0))
	assert.Equal(t, 1.0, m.Minor(1, 1))
}

func TestMatrix2x2VectorProductLeft(t *testing.T) {
	m := MustMatrix2x2(1, 0, 0, 1)
	v := vec.MustVector2(3, 4)
	assert.True(t, m.VectorProductLeft(v).Equal(v))
}

func TestMatrix3x3Determinant(t *testing.T) {
	m := MustMatrix3x3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
	assert.Equal(t, 1.0, m.Determinant())
}

func TestMatrix3x3Minor(t *testing.T) {
	m := MustMatrix3x3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	minor := m.Minor(0, 0)
	assert.Equal(t, MustMatrix2x2(5, 6, 8, 9), minor)
}

func TestMatrix3x3SolveSystem(t *testing.T) {
	m := MustMatrix3x3(
		1, 0, 0,
		0, 2, 0,
		0, 0, 4,
	)
	x, err := m.SolveSystem(vec.MustVector3(2, 4, 8))
	require.NoError(t, err)
	assert.Equal(t, 2.0, x.V0())
	assert.Equal(t, 2.0, x.V1())
	assert.Equal(t, 2.0, x.V2())
}

func TestMatrix4x4IdentityDeterminant(t *testing.T) {
	m := MustMatrix4x4([4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	assert.Equal(t, 1.0, m.Determinant())
}

func TestMatrix4x4BezierMatrixDeterminant(t *testing.T) {
	// The Bezier characteristic matrix (spec §4.9) is invertible.
	m := MustMatrix4x4([4][4]float64{
		{1, 0, 0, 0},
		{-3, 3, 0, 0},
		{3, -6, 3, 0},
		{-1, 3, -3, 1},
	})
	assert.NotEqual(t, 0.0, m.Determinant())
}

func TestMatrix4x4SolveSystemSingular(t *testing.T) {
	m := MustMatrix4x4([4][4]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	})
	_, err := m.SolveSystem(vec.MustVector4(1, 2, 3, 4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrSingularMatrix))
}

func TestMatrix4x4RowsAndColumnsRoundTrip(t *testing.T) {
	m := MustMatrix4x4([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	rows := m.ToRows()
	assert.Equal(t, m, FromRows4x4(rows[0], rows[1], rows[2], rows[3], m.Precision))
	cols := m.ToColumns()
	assert.Equal(t, m, FromColumns4x4(cols[0], cols[1], cols[2], cols[3], m.Precision))
}

func TestNewMatrix4x4RejectsNonFinite(t *testing.T) {
	_, err := NewMatrix4x4([4][4]float64{
		{1, 0, 0, 0},
		{0, math.Inf(-1), 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInput))
}
