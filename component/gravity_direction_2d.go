//go:build !physics3d

package component

import "github.com/milk9111/gravity/vec"

// GravityDirectionFromXY constructs a GravityDirection from its components.
func GravityDirectionFromXY(x, y float64) GravityDirection {
	return GravityDirection{Vector: vec.NewVector(x, y)}
}

// SetXY replaces both components.
func (g *GravityDirection) SetXY(x, y float64) {
	g.X = x
	g.Y = y
}
