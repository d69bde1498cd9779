package component

import "testing"

func TestComponentHandleIDs(t *testing.T) {
	h1 := NewComponent[int]()
	h2 := NewComponent[int]()
	h3 := NewComponent[string]()

	if !h1.Kind().Valid() || !h2.Kind().Valid() || !h3.Kind().Valid() {
		t.Fatalf("new handles must be valid")
	}
	if h1.Kind().ID() == h2.Kind().ID() {
		t.Fatalf("handles of the same type must get distinct IDs")
	}

	var zero ComponentKind[int]
	if zero.Valid() {
		t.Fatalf("zero kind must be invalid")
	}
}

func TestPackageHandlesRegistered(t *testing.T) {
	if !GravityDirectionComponent.Kind().Valid() {
		t.Fatalf("GravityDirectionComponent not registered")
	}
	if !GravityScaleComponent.Kind().Valid() {
		t.Fatalf("GravityScaleComponent not registered")
	}
	if GravityDirectionComponent.Kind().ID() == GravityScaleComponent.Kind().ID() {
		t.Fatalf("component handles must have distinct IDs")
	}
}
