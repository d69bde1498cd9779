//go:build physics3d

package component

import "github.com/milk9111/gravity/vec"

// GravityDirectionFromXYZ constructs a GravityDirection from its components.
func GravityDirectionFromXYZ(x, y, z float64) GravityDirection {
	return GravityDirection{Vector: vec.NewVector(x, y, z)}
}

// SetXYZ replaces all three components.
func (g *GravityDirection) SetXYZ(x, y, z float64) {
	g.X = x
	g.Y = y
	g.Z = z
}

// SetZ replaces the z-component, leaving the others untouched.
func (g *GravityDirection) SetZ(z float64) {
	g.Z = z
}
