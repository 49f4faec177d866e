package curve

import "github.com/itohio/splinekit/pkg/core/round"

func resolvePrecision(precision ...int) int {
	if len(precision) > 0 {
		return precision[0]
	}
	return round.Default
}

// resolvePrecisionOr defaults to fallback (typically the curve's own
// Precision) rather than round.Default when no override is supplied.
func resolvePrecisionOr(fallback int, precision ...int) int {
	if len(precision) > 0 {
		return precision[0]
	}
	return fallback
}
