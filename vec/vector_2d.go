//go:build !physics3d

package vec

import "github.com/jakecoffman/cp"

// Vector is the 2D build's vector type. Aliasing the Chipmunk2D vector keeps
// component values directly usable by the physics space without conversion.
type Vector = cp.Vector

// NewVector returns a vector with the given components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vector {
	return Vector{}
}
