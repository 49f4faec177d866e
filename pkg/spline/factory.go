package spline

import (
	"github.com/itohio/splinekit/pkg/core/polynomial"
	"github.com/itohio/splinekit/pkg/core/vec"
)

// DuplicateEndpoints prepends the first control and appends the last,
// giving a Cardinal/Catmull-Rom control sequence a tangent source at each
// boundary (spec §4.11).
func DuplicateEndpoints(controls []float64) []float64 {
	out := make([]float64, 0, len(controls)+2)
	out = append(out, controls[0])
	out = append(out, controls...)
	out = append(out, controls[len(controls)-1])
	return out
}

// TriplicateEndpoints prepends the first control twice and appends the
// last twice, pinning a Basis/B-spline chain to its end controls.
func TriplicateEndpoints(controls []float64) []float64 {
	out := make([]float64, 0, len(controls)+4)
	out = append(out, controls[0], controls[0])
	out = append(out, controls...)
	out = append(out, controls[len(controls)-1], controls[len(controls)-1])
	return out
}

// ChunkCoefficients partitions controls into f's windows and applies f's
// characteristic matrix to each, producing one Cubic per chunk in order
// (spec §4.11). It fails with splinekit.ErrInvalidInput when controls
// contains a NaN or +/-Inf value.
func ChunkCoefficients(f Family, controls []float64, precision ...int) ([]polynomial.Cubic, error) {
	windows, err := ToCubicScalars(controls, f.Stride)
	if err != nil {
		return nil, err
	}
	cubics := make([]polynomial.Cubic, len(windows))
	for i, w := range windows {
		v, err := vec.NewVector4(w[0], w[1], w[2], w[3])
		if err != nil {
			return nil, err
		}
		coeffs := f.Matrix.VectorProductLeft(v)
		cubics[i] = polynomial.CubicFromVector(coeffs, precision...)
	}
	return cubics, nil
}
