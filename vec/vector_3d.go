//go:build physics3d

package vec

import (
	"fmt"
	"math"
)

// Vector is the 3D build's vector type. Chipmunk2D is two-dimensional, so the
// 3D build carries its own vector with the same method surface as cp.Vector.
type Vector struct {
	X, Y, Z float64
}

// NewVector returns a vector with the given components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Zero returns the zero vector.
func Zero() Vector {
	return Vector{}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector) Mult(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit-length copy. The epsilon keeps the zero vector at
// zero instead of dividing by zero, matching cp.Vector.
func (v Vector) Normalize() Vector {
	return v.Mult(1.0 / (v.Length() + 1e-50))
}

func (v Vector) Lerp(other Vector, t float64) Vector {
	return v.Mult(1.0 - t).Add(other.Mult(t))
}

// Clamp returns a copy whose length is at most length.
func (v Vector) Clamp(length float64) Vector {
	if v.Dot(v) > length*length {
		return v.Normalize().Mult(length)
	}
	return v
}

func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
