package interval

import (
	"errors"
	"math"
	"testing"

	"github.com/itohio/splinekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonFiniteBounds(t *testing.T) {
	_, err := New(math.NaN(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInput))

	_, err = New(0, math.Inf(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInput))
}

func TestFromMinMaxRejectsNonFinite(t *testing.T) {
	_, err := FromMinMax([]float64{1, math.NaN(), 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInput))
}

func TestNewRejectsEndBeforeStart(t *testing.T) {
	_, err := New(2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, splinekit.ErrInvalidInterval))
}

func TestNewAllowsDegenerateInterval(t *testing.T) {
	i, err := New(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, i.Size())
}

func TestContainsDefaultsToClosedInterval(t *testing.T) {
	i := Must(0, 1)
	assert.True(t, i.Contains(0))
	assert.True(t, i.Contains(1))
	assert.True(t, i.Contains(0.5))
	assert.False(t, i.Contains(-0.1))
}

func TestContainsExclusiveOptions(t *testing.T) {
	i := Must(0, 1)
	opts := ContainsOptions{IncludeStart: false, IncludeEnd: false}
	assert.False(t, i.Contains(0, opts))
	assert.False(t, i.Contains(1, opts))
	assert.True(t, i.Contains(0.5, opts))
}

func TestClamp(t *testing.T) {
	i := Must(0, 10)
	assert.True(t, i.Contains(i.Clamp(-5)))
	assert.True(t, i.Contains(i.Clamp(15)))
	assert.Equal(t, 5.0, i.Clamp(5))
}

func TestLerpNormalizeRoundTrip(t *testing.T) {
	i := Must(2, 8)
	assert.Equal(t, 5.0, i.Lerp(0.5))
	assert.Equal(t, 0.5, i.Normalize(5))
}

func TestRemap(t *testing.T) {
	from := Must(0, 1)
	to := Must(0, 2)
	assert.Equal(t, 1.0, Remap(0.5, from, to))
}

func TestFromMinMax(t *testing.T) {
	i, err := FromMinMax([]float64{3, -1, 4, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, -1.0, i.Start)
	assert.Equal(t, 5.0, i.End)
}

func TestFilterPreservesOrder(t *testing.T) {
	i := Must(0, 10)
	got := i.Filter([]float64{-1, 2, 15, 7, 0, 10})
	assert.Equal(t, []float64{2, 7, 0, 10}, got)
}
