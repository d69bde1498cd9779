//go:build !physics3d

package vec

import "testing"

func TestNewVector(t *testing.T) {
	v := NewVector(3.5, -2)
	if v.X != 3.5 || v.Y != -2 {
		t.Fatalf("got (%v, %v), want (3.5, -2)", v.X, v.Y)
	}
}

func TestZero(t *testing.T) {
	z := Zero()
	if z.X != 0 || z.Y != 0 {
		t.Fatalf("zero vector has non-zero component: %v", z)
	}
}
