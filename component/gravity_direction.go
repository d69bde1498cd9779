package component

import "github.com/milk9111/gravity/vec"

// GravityDirection is the direction of gravity applied to an entity.
//
// The embedded vector makes the component readable and writable as the vector
// itself (g.X, g.Length(), ...). Despite the name, no unit length is enforced:
// the magnitude is kept as given, so the vector can double as a scaled
// acceleration. Accepts any float64 values, including NaN and ±Inf.
type GravityDirection struct {
	vec.Vector
}

var GravityDirectionComponent = NewComponent[GravityDirection]()

// NewGravityDirection constructs a GravityDirection from a vector.
func NewGravityDirection(v vec.Vector) GravityDirection {
	return GravityDirection{Vector: v}
}

// Set replaces the whole vector.
func (g *GravityDirection) Set(v vec.Vector) {
	g.Vector = v
}

// SetX replaces the x-component, leaving the others untouched.
func (g *GravityDirection) SetX(x float64) {
	g.X = x
}

// SetY replaces the y-component, leaving the others untouched.
func (g *GravityDirection) SetY(y float64) {
	g.Y = y
}

// Vec returns the underlying vector value.
func (g GravityDirection) Vec() vec.Vector {
	return g.Vector
}

// Normalized returns a unit-length copy of the direction. The stored vector is
// never mutated; a zero vector stays zero.
func (g GravityDirection) Normalized() vec.Vector {
	return g.Vector.Normalize()
}
