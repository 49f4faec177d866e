package curve

import (
	"context"
	"testing"

	"github.com/itohio/splinekit/pkg/core/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLengthTableMonotoneAndNormalized(t *testing.T) {
	axes := []axis{{
		name: "x",
		chain: []polynomial.Cubic{
			polynomial.MustCubic(0, 1, 0, 0),
			polynomial.MustCubic(1, 1, 0, 0),
		},
	}}
	lt, err := buildLengthTable(context.Background(), axes, 2)
	require.NoError(t, err)

	assert.Equal(t, 0.0, lt.sAt[0])
	assert.InDelta(t, 1.0, lt.sAt[len(lt.sAt)-1], 1e-9)
	for i := 1; i < len(lt.sAt); i++ {
		assert.GreaterOrEqual(t, lt.sAt[i], lt.sAt[i-1])
	}
}

func TestLengthTableLookupInterpolates(t *testing.T) {
	lt := lengthTable{
		ts:  []float64{0, 0.5, 1},
		sAt: []float64{0, 0.25, 1},
	}
	assert.InDelta(t, 0.25, lt.lookup(0.125), 1e-9)
	assert.Equal(t, 0.0, lt.lookup(0))
	assert.Equal(t, 1.0, lt.lookup(1))
}
