//go:build !physics3d

package component

import "github.com/milk9111/gravity/vec"

// DefaultGravity is standard downward gravity in m/s^2.
func DefaultGravity() vec.Vector {
	return vec.NewVector(0, -9.81)
}
