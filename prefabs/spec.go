package prefabs

import (
	"fmt"

	"github.com/milk9111/gravity/component"
	"gopkg.in/yaml.v3"
)

// GravitySpec is one entity's gravity block inside a prefab file.
type GravitySpec struct {
	Name      string                        `yaml:"name"`
	Direction GravityDirectionComponentSpec `yaml:"direction"`
	Scale     *GravityScaleComponentSpec    `yaml:"scale"`
}

func LoadGravitySpec() (*GravitySpec, error) {
	spec, err := LoadSpec[GravitySpec]("gravity.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadSpec reads and unmarshals one spec file, preferring the on-disk copy
// over the embedded default.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeComponentSpec converts one already-parsed component block (a
// map[string]any from a larger document) into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

func (s GravityScaleComponentSpec) Component() component.GravityScale {
	return component.GravityScale{Scale: s.Scale}
}
