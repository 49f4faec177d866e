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

func TestNewCubicRejectsNonFinite(t *testing.T) {
	_, err := NewCubic(0, 0, 0, math.NaN())
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInput))
}

// Scenario D: cubic.solveInverse(make(0, -1, 0, 1), 0) == [-1, 0, 1].
func TestCubicSolveInverseScenarioD(t *testing.T) {
	p := MustCubic(0, -1, 0, 1)
	got := p.SolveInverse(0)
	require.Len(t, got, 3)
	assert.InDelta(t, -1.0, got[0], 1e-9)
	assert.InDelta(t, 0.0, got[1], 1e-9)
	assert.InDelta(t, 1.0, got[2], 1e-9)
}

// Scenario E: cubic.solveInverse(make(3, -5, 1, 1), 0) == [-3, 1] (double
// root at 1 deduplicated to a single entry).
func TestCubicSolveInverseScenarioE(t *testing.T) {
	p := MustCubic(3, -5, 1, 1)
	got := p.SolveInverse(0)
	require.Len(t, got, 2)
	assert.InDelta(t, -3.0, got[0], 1e-9)
	assert.InDelta(t, 1.0, got[1], 1e-9)
}

// Scenario G: cubic.domain(make(0, -1.5, 0, 0.5), interval.make(-3, -2)) ==
// interval.make(-2.355301397608, -2.195823345446).
func TestCubicDomainScenarioG(t *testing.T) {
	p := MustCubic(0, -1.5, 0, 0.5)
	d, err := p.Domain(interval.Must(-3, -2))
	require.NoError(t, err)
	assert.InDelta(t, -2.355301397608, d.Start, 1e-6)
	assert.InDelta(t, -2.195823345446, d.End, 1e-6)
}

func TestCubicSolveInverseDelegatesWhenQuadratic(t *testing.T) {
	p := MustCubic(0, 1, 2, 0)
	assert.Equal(t, []float64{-0.5, 0}, p.SolveInverse(0))
}

func TestCubicDerivative(t *testing.T) {
	p := MustCubic(0, -1, 0, 1)
	d := p.Derivative()
	assert.Equal(t, -1.0, d.C0())
	assert.Equal(t, 0.0, d.C1())
	assert.Equal(t, 3.0, d.C2())
}

func TestCubicExtrema(t *testing.T) {
	p := MustCubic(0, -1, 0, 1)
	extrema := p.Extrema()
	require.Len(t, extrema, 2)
	assert.InDelta(t, -0.57735026919, extrema[0], 1e-9)
	assert.InDelta(t, 0.57735026919, extrema[1], 1e-9)
}

func TestCubicMonotonicityStraddlingExtremumIsNone(t *testing.T) {
	p := MustCubic(0, -1, 0, 1)
	assert.Equal(t, MonotonicityNone, p.Monotonicity(interval.Must(-1, 1)))
	assert.Equal(t, Increasing, p.Monotonicity(interval.Must(1, 2)))
}

func TestCubicLengthDelegatesWhenQuadratic(t *testing.T) {
	p := MustCubic(0, 0, 1, 0, 8)
	got := p.Length(interval.Must(0, 1, 8))
	assert.InDelta(t, 1.47894286, got, 1e-8)
}

func TestCubicLengthZeroSizeDomain(t *testing.T) {
	p := MustCubic(0, -1, 0, 1)
	assert.Equal(t, 0.0, p.Length(interval.Must(1, 1)))
}
