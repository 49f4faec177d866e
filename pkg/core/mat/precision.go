package mat

import "github.com/itohio/splinekit/pkg/core/round"

func resolvePrecision(precision ...int) int {
	if len(precision) > 0 {
		return precision[0]
	}
	return round.Default
}

func resolveDerivedPrecision(a, b int, precision ...int) int {
	if len(precision) > 0 {
		return precision[0]
	}
	return round.MinPrecision(a, b)
}
