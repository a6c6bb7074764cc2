package config

import (
	"errors"
	"fmt"

	"github.com/edwinsyarief/shake2d/curve"
	"gopkg.in/yaml.v3"
)

var ErrUnknownCurve = errors.New("unknown curve")

// A curve reference. In yaml, it can be either a built-in curve
// name or a list of [phase, value] keyframes:
//
//	curve: sine
//	position:
//	  keys: [[-1, -1], [-0.2, -0.9], [0.2, 0.9], [1, 1]]
type CurveConfig struct {
	Name string       `yaml:"name"`
	Keys [][2]float64 `yaml:"keys"`
}

// UnmarshalYAML accepts both the scalar and the mapping forms.
func (self *CurveConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		self.Name = node.Value
		self.Keys = nil
		return nil
	}
	type plain CurveConfig // avoid recursion
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*self = CurveConfig(raw)
	return nil
}

func (self *CurveConfig) build() (curve.Curve, error) {
	if self == nil {
		return nil, nil
	}
	if len(self.Keys) > 0 {
		if self.Name != "" {
			return nil, errors.New("curve can't have both a name and keys")
		}
		keys := make([]curve.Key, len(self.Keys))
		for i, key := range self.Keys {
			keys[i] = curve.Key{Phase: key[0], Value: key[1]}
		}
		keyframes, err := curve.NewKeyframes(keys...)
		if err != nil {
			return nil, err
		}
		return keyframes, nil
	}
	if self.Name == "" {
		return nil, nil
	}
	named := curve.ByName(self.Name)
	if named == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, self.Name)
	}
	return named, nil
}

// Mirrors [curve.Set].
type CurveSetConfig struct {
	Split    bool         `yaml:"split"`
	Curve    *CurveConfig `yaml:"curve"`
	Position *CurveConfig `yaml:"position"`
	Rotation *CurveConfig `yaml:"rotation"`
	Scale    *CurveConfig `yaml:"scale"`
}

func (self *CurveSetConfig) build() (curve.Set, error) {
	var set curve.Set
	var err error
	set.Split = self.Split
	if set.Curve, err = self.Curve.build(); err != nil {
		return set, err
	}
	if set.Position, err = self.Position.build(); err != nil {
		return set, fmt.Errorf("position: %w", err)
	}
	if set.Rotation, err = self.Rotation.build(); err != nil {
		return set, fmt.Errorf("rotation: %w", err)
	}
	if set.Scale, err = self.Scale.build(); err != nil {
		return set, fmt.Errorf("scale: %w", err)
	}
	return set, nil
}
