package vec

import (
	"github.com/itohio/splinekit"
	"github.com/itohio/splinekit/pkg/core/round"
)

// Vector2 is an immutable 2-component numeric tuple. Every derived value is
// rounded to Precision decimal digits at construction (spec §3/§4.2).
type Vector2 struct {
	v0, v1    float64
	Precision int
}

// NewVector2 builds a Vector2, rounding each component to precision decimal
// digits. precision defaults to round.Default when omitted. It fails with
// splinekit.ErrInvalidInput when either component is NaN or +/-Inf
// (spec §7: inputs are asserted finite at construction).
func NewVector2(v0, v1 float64, precision ...int) (Vector2, error) {
	if !round.AllFinite(v0, v1) {
		return Vector2{}, splinekit.New(splinekit.InvalidInput, "vector2 component is not finite")
	}
	p := resolvePrecision(precision...)
	return newVector2(p, v0, v1), nil
}

// MustVector2 is like NewVector2 but panics on failure; used internally to
// rebuild a Vector2 from components already known finite (rounding, sums of
// finite operands, literal constants).
func MustVector2(v0, v1 float64, precision ...int) Vector2 {
	v, err := NewVector2(v0, v1, precision...)
	if err != nil {
		panic(err)
	}
	return v
}

func newVector2(p int, v0, v1 float64) Vector2 {
	return Vector2{
		v0:        round.Round(v0, p),
		v1:        round.Round(v1, p),
		Precision: p,
	}
}

// Vector2FromArray builds a Vector2 from a 2-element slice.
func Vector2FromArray(a []float64, precision ...int) (Vector2, error) {
	return NewVector2(a[0], a[1], precision...)
}

func (v Vector2) V0() float64 { return v.v0 }
func (v Vector2) V1() float64 { return v.v1 }

// Components returns the vector's values in order.
func (v Vector2) Components() []float64 { return []float64{v.v0, v.v1} }

// Dot computes the dot product, rounded to the lower of the two operands'
// precisions unless precision is supplied explicitly.
func (v Vector2) Dot(other Vector2, precision ...int) float64 {
	p := resolveDerivedPrecision(v.Precision, other.Precision, precision...)
	return round.Round(v.v0*other.v0+v.v1*other.v1, p)
}

// Equal reports whether two vectors carry the same (rounded) components.
func (v Vector2) Equal(other Vector2) bool {
	return v.v0 == other.v0 && v.v1 == other.v1
}
