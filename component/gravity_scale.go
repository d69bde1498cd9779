package component

import "github.com/milk9111/gravity/vec"

// GravityScale scales world gravity for a dynamic physics body.
// 1.0 = normal gravity, 0.0 = no gravity.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()

// Apply returns the gravity vector scaled for this body.
func (s GravityScale) Apply(v vec.Vector) vec.Vector {
	return v.Mult(s.Scale)
}
