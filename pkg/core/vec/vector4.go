package vec

import (
	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/round"
)

// Vector4 is an immutable 4-component numeric tuple. It doubles as the
// control/coefficient vector used by pkg/spline's characteristic matrices.
type Vector4 struct {
	v0, v1, v2, v3 float64
	Precision      int
}

// NewVector4 builds a Vector4, rounding each component to precision. It
// fails with splinekit.ErrInvalidInput when any component is non-finite.
func NewVector4(v0, v1, v2, v3 float64, precision ...int) (Vector4, error) {
	if !round.AllFinite(v0, v1, v2, v3) {
		return Vector4{}, splinekit.New(splinekit.InvalidInput, "vector4 component is not finite")
	}
	p := resolvePrecision(precision...)
	return newVector4(p, v0, v1, v2, v3), nil
}

// MustVector4 is like NewVector4 but panics on failure; used internally to
// rebuild a Vector4 from components already known finite.
func MustVector4(v0, v1, v2, v3 float64, precision ...int) Vector4 {
	v, err := NewVector4(v0, v1, v2, v3, precision...)
	if err != nil {
		panic(err)
	}
	return v
}

func newVector4(p int, v0, v1, v2, v3 float64) Vector4 {
	return Vector4{
		v0:        round.Round(v0, p),
		v1:        round.Round(v1, p),
		v2:        round.Round(v2, p),
		v3:        round.Round(v3, p),
		Precision: p,
	}
}

// Vector4FromArray builds a Vector4 from a 4-element slice.
func Vector4FromArray(a []float64, precision ...int) (Vector4, error) {
	return NewVector4(a[0], a[1], a[2], a[3], precision...)
}

func (v Vector4) V0() float64 { return v.v0 }
func (v Vector4) V1() float64 { return v.v1 }
func (v Vector4) V2() float64 { return v.v2 }
func (v Vector4) V3() float64 { return v.v3 }

// Components returns the vector's values in order.
func (v Vector4) Components() []float64 { return []float64{v.v0, v.v1, v.v2, v.v3} }

// Dot computes the dot product, rounded per resolveDerivedPrecision.
func (v Vector4) Dot(other Vector4, precision ...int) float64 {
	p := resolveDerivedPrecision(v.Precision, other.Precision, precision...)
	return round.Round(v.v0*other.v0+v.v1*other.v1+v.v2*other.v2+v.v3*other.v3, p)
}

// Equal reports whether two vectors carry the same (rounded) components.
func (v Vector4) Equal(other Vector4) bool {
	return v.v0 == other.v0 && v.v1 == other.v1 && v.v2 == other.v2 && v.v3 == other.v3
}
