package interval

import "github.com/itohio/splinekit/pkg/core/round"

func resolvePrecision(precision ...int) int {
	if len(precision) > 0 {
		return precision[0]
	}
	return round.Default
}
