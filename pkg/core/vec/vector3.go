package vec

import (
	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/round"
)

// Vector3 is an immutable 3-component numeric tuple.
type Vector3 struct {
	v0, v1, v2 float64
	Precision  int
}

// NewVector3 builds a Vector3, rounding each component to precision. It
// fails with splinekit.ErrInvalidInput when any component is non-finite.
func NewVector3(v0, v1, v2 float64, precision ...int) (Vector3, error) {
	if !round.AllFinite(v0, v1, v2) {
		return Vector3{}, splinekit.New(splinekit.InvalidInput, "vector3 component is not finite")
	}
	p := resolvePrecision(precision...)
	return newVector3(p, v0, v1, v2), nil
}

// MustVector3 is like NewVector3 but panics on failure; used internally to
// rebuild a Vector3 from components already known finite.
func MustVector3(v0, v1, v2 float64, precision ...int) Vector3 {
	v, err := NewVector3(v0, v1, v2, precision...)
	if err != nil {
		panic(err)
	}
	return v
}

func newVector3(p int, v0, v1, v2 float64) Vector3 {
	return Vector3{
		v0:        round.Round(v0, p),
		v1:        round.Round(v1, p),
		v2:        round.Round(v2, p),
		Precision: p,
	}
}

// Vector3FromArray builds a Vector3 from a 3-element slice.
func Vector3FromArray(a []float64, precision ...int) (Vector3, error) {
	return NewVector3(a[0], a[1], a[2], precision...)
}

func (v Vector3) V0() float64 { return v.v0 }
func (v Vector3) V1() float64 { return v.v1 }
func (v Vector3) V2() float64 { return v.v2 }

// Components returns the vector's values in order.
func (v Vector3) Components() []float64 { return []float64{v.v0, v.v1, v.v2} }

// Dot computes the dot product, rounded per resolveDerivedPrecision.
func (v Vector3) Dot(other Vector3, precision ...int) float64 {
	p := resolveDerivedPrecision(v.Precision, other.Precision, precision...)
	return round.Round(v.v0*other.v0+v.v1*other.v1+v.v2*other.v2, p)
}

// Equal reports whether two vectors carry the same (rounded) components.
func (v Vector3) Equal(other Vector3) bool {
	return v.v0 == other.v0 && v.v1 == other.v1 && v.v2 == other.v2
}
