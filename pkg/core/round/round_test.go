package round

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.23, Round(1.225, 2))
	assert.Equal(t, -1.23, Round(-1.225, 2))
	assert.Equal(t, 2.0, Round(1.5, 0))
	assert.Equal(t, -2.0, Round(-1.5, 0))
}

func TestRoundFastPathAtMaxPrecision(t *testing.T) {
	v := 1.0 / 3.0
	assert.Equal(t, v, Round(v, Max))
	assert.Equal(t, v, Round(v, Max+3))
}

func TestRoundNegativePrecisionClampsToZero(t *testing.T) {
	assert.Equal(t, 2.0, Round(1.6, -4))
}

func TestMinPrecision(t *testing.T) {
	assert.Equal(t, 3, MinPrecision(3, 8))
	assert.Equal(t, 3, MinPrecision(8, 3))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0))
	assert.True(t, AllFinite(1, 2, 3))
	assert.False(t, AllFinite(1, math.NaN(), 3))
}
