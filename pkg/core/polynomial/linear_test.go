package polynomial

import (
	"errors"
	"math"
	"testing"

	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinearRejectsNonFinite(t *testing.T) {
	_, err := NewLinear(math.NaN(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInput))
}

func TestLinearSolve(t *testing.T) {
	p := MustLinear(1, 2)
	assert.Equal(t, 5.0, p.Solve(2))
}

func TestLinearSolveInverse(t *testing.T) {
	p := MustLinear(1, 2)
	assert.Equal(t, []float64{1.5}, p.SolveInverse(4))
}

func TestLinearSolveInverseConstantIsEmpty(t *testing.T) {
	p := MustLinear(3, 0)
	assert.Nil(t, p.SolveInverse(3))
	assert.Nil(t, p.SolveInverse(0))
}

func TestLinearDerivativeAntiderivativeRoundTrip(t *testing.T) {
	p := MustLinear(3, 4)
	q := p.Antiderivative(5)
	assert.Equal(t, 5.0, q.Solve(0))
	assert.Equal(t, p, q.Derivative())
}

func TestLinearMonotonicity(t *testing.T) {
	assert.Equal(t, Increasing, MustLinear(0, 1).Monotonicity())
	assert.Equal(t, Decreasing, MustLinear(0, -1).Monotonicity())
	assert.Equal(t, Constant, MustLinear(5, 0).Monotonicity())
}

func TestLinearDomain(t *testing.T) {
	p := MustLinear(0, 2)
	d, err := p.Domain(interval.Must(0, 4))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Start)
	assert.Equal(t, 2.0, d.End)
}

func TestLinearDomainConstantFails(t *testing.T) {
	p := MustLinear(3, 0)
	_, err := p.Domain(interval.Must(0, 4))
	require.Error(t, err)
}

func TestLinearLength(t *testing.T) {
	p := MustLinear(0, 0)
	assert.Equal(t, 1.0, p.Length(interval.Must(0, 1)))
}
