//go:build physics3d

package prefabs

import (
	"github.com/milk9111/gravity/component"
	"github.com/milk9111/gravity/vec"
)

type GravityDirectionComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (s GravityDirectionComponentSpec) Vector() vec.Vector {
	return vec.NewVector(s.X, s.Y, s.Z)
}

func (s GravityDirectionComponentSpec) Component() component.GravityDirection {
	return component.NewGravityDirection(s.Vector())
}
