package spline

import "github.com/itohio/splinekit"

// ToCubicScalars partitions seq into overlapping windows of length 4,
// advancing by stride (spec §4.10). It fails with splinekit.ErrInvalidChunking
// when len(seq) < 4, stride is not in {1, 2, 3}, or (len(seq)-4) is not a
// multiple of stride.
func ToCubicScalars(seq []float64, stride int) ([][4]float64, error) {
	if len(seq) < 4 {
		return nil, splinekit.New(splinekit.InvalidChunking, "sequence shorter than 4")
	}
	if stride < 1 || stride > 3 {
		return nil, splinekit.New(splinekit.InvalidChunking, "stride must be 1, 2, or 3")
	}
	if (len(seq)-4)%stride != 0 {
		return nil, splinekit.New(splinekit.InvalidChunking, "sequence length misaligned with stride")
	}
	n := (len(seq)-4)/stride + 1
	windows := make([][4]float64, n)
	for i := 0; i < n; i++ {
		start := i * stride
		copy(windows[i][:], seq[start:start+4])
	}
	return windows, nil
}

// ToBezierSegments chunks seq for the Bezier family (stride 3).
func ToBezierSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, Bezier().Stride)
}

// ToHermiteSegments chunks seq for the Hermite family (stride 2).
func ToHermiteSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, Hermite().Stride)
}

// ToCardinalSegments chunks seq for the Cardinal family (stride 1).
func ToCardinalSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, Cardinal(0).Stride)
}

// ToCatmullRomSegments chunks seq for the Catmull-Rom family (stride 1).
func ToCatmullRomSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, CatmullRom().Stride)
}

// ToBSplineSegments chunks seq for the Basis family (stride 1).
func ToBSplineSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, Basis().Stride)
}
