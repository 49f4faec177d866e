package vec

import "github.com/itohio/splinekit/pkg/core/round"

// resolvePrecision returns the first element of precision, or round.Default
// when none is supplied. Shared by every Vectorn constructor (spec §4.2).
func resolvePrecision(precision ...int) int {
	if len(precision) > 0 {
		return precision[0]
	}
	return round.Default
}

// resolveDerivedPrecision picks the precision for a value derived from two
// operands: an explicit override if supplied, otherwise the minimum of the
// two operand precisions (spec §4.2/§9).
func resolveDerivedPrecision(a, b int, precision ...int) int {
	if len(precision) > 0 {
		return precision[0]
	}
	return round.MinPrecision(a, b)
}
