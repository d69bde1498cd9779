package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrNilComponent         = errors.New("component: component is nil")
	ErrInvalidComponentKind = errors.New("component: invalid component kind")
)

// ComponentID identifies a component type within a host world. IDs are
// process-unique and assigned at handle creation.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind keys a host world's storage for one component type.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the package-level registration for a component type.
// Hosts attach and query instances through handle.Kind().
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
