package polynomial

// gaussLegendreNodes9 and gaussLegendreWeights9 are the fixed 9-point
// Gauss-Legendre quadrature nodes and weights on [-1, 1], tabulated from
// the roots of the degree-9 Legendre polynomial rather than recomputed at
// call time (spec §4.7/§9). Only the cubic arc-length integral uses these.
var gaussLegendreNodes9 = [9]float64{
	0,
	-0.324253423403809,
	0.324253423403809,
	-0.613371432700590,
	0.613371432700590,
	-0.836031107326636,
	0.836031107326636,
	-0.968160239507626,
	0.968160239507626,
}

var gaussLegendreWeights9 = [9]float64{
	0.330239355001260,
	0.312347077040003,
	0.312347077040003,
	0.260610696402935,
	0.260610696402935,
	0.180648160694857,
	0.180648160694857,
	0.081274388361574,
	0.081274388361574,
}

// gaussLegendre9 approximates the integral of f over [a, b] using the
// fixed 9-point Gauss-Legendre rule.
func gaussLegendre9(f func(x float64) float64, a, b float64) float64 {
	mid := (a + b) / 2
	halfWidth := (b - a) / 2
	sum := 0.0
	for i, node := range gaussLegendreNodes9 {
		sum += gaussLegendreWeights9[i] * f(mid+halfWidth*node)
	}
	return sum * halfWidth
}
