package polynomial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuaranteedMonotonicityFromComparison(t *testing.T) {
	assert.Equal(t, Increasing, guaranteedMonotonicityFromComparison(0, 1))
	assert.Equal(t, Decreasing, guaranteedMonotonicityFromComparison(1, 0))
	assert.Equal(t, Constant, guaranteedMonotonicityFromComparison(1, 1))
}

func TestMonotonicityString(t *testing.T) {
	assert.Equal(t, "increasing", Increasing.String())
	assert.Equal(t, "decreasing", Decreasing.String())
	assert.Equal(t, "constant", Constant.String())
	assert.Equal(t, "none", MonotonicityNone.String())
}
