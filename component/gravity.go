package component

import "github.com/milk9111/gravity/vec"

// GravityFor resolves the gravity vector a physics step should apply to one
// entity. A nil direction falls back to the world default, a nil scale means
// normal gravity.
func GravityFor(dir *GravityDirection, scale *GravityScale) vec.Vector {
	v := DefaultGravity()
	if dir != nil {
		v = dir.Vec()
	}
	if scale != nil {
		v = scale.Apply(v)
	}
	return v
}
