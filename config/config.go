// Package config loads shake2d manager settings and shake presets
// from yaml files.
//
// A minimal file looks like this:
//
//	manager:
//	  strength_end: 0.05
//	  chunk_size: 1
//	presets:
//	  explosion:
//	    shake_strength: 12
//	    decay_flat_rate: 20
//	    cycle_rate: 14
//	    rail_rotation_rate: 140
//
// Missing values fall back to the same defaults as
// shake2d.DefaultOptions() and to the description defaults
// documented on [PresetConfig].
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/edwinsyarief/shake2d"
	"github.com/edwinsyarief/shake2d/shaker"
	"gopkg.in/yaml.v3"
)

var ErrUnknownPreset = errors.New("unknown preset")

// The whole configuration file.
type File struct {
	Manager ManagerConfig           `yaml:"manager"`
	Presets map[string]PresetConfig `yaml:"presets"`

	descriptions map[string]shaker.Description
}

// Manager settings. Pointer fields distinguish "unset" from zero.
type ManagerConfig struct {
	StrengthEnd     *float64       `yaml:"strength_end"`      // default 1
	UseChunking     *bool          `yaml:"use_chunking"`      // default true
	ChunkSize       *float64       `yaml:"chunk_size"`        // default 0.01
	InitialPoolSize *int           `yaml:"initial_pool_size"` // default 16
	TrimOnUpdate    *bool          `yaml:"trim_on_update"`    // default true
	Curves          CurveSetConfig `yaml:"curves"`
}

// A shake preset. Fields mirror [shaker.Description].
type PresetConfig struct {
	UseChannel  bool   `yaml:"use_channel"`
	ChannelID   string `yaml:"channel_id"`
	ChannelMode string `yaml:"channel_mode"` // refresh_if_stronger (default) or ignore_if_active

	ShakeStrength    float64  `yaml:"shake_strength"`
	DecayFlatRate    float64  `yaml:"decay_flat_rate"`
	DecayPercentRate float64  `yaml:"decay_percent_rate"`
	CycleRate        *float64 `yaml:"cycle_rate"` // default 1

	UsePosition      *bool    `yaml:"use_position"`   // default true
	PositionScale    *float64 `yaml:"position_scale"` // default 1
	RailRotationRate float64  `yaml:"rail_rotation_rate"`

	UseRotation        bool    `yaml:"use_rotation"`
	ScreenRotationRate float64 `yaml:"screen_rotation_rate"`

	UseScale           bool    `yaml:"use_scale"`
	MaxScaleDifference float64 `yaml:"max_scale_difference"`

	Curves *CurveSetConfig `yaml:"curves"` // optional override
}

// Loads and parses the configuration file at the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parses a configuration file, applies defaults and validates
// every preset.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// defaults
	if file.Manager.StrengthEnd == nil {
		file.Manager.StrengthEnd = ptr(1.0)
	}
	if file.Manager.UseChunking == nil {
		file.Manager.UseChunking = ptr(true)
	}
	if file.Manager.ChunkSize == nil {
		file.Manager.ChunkSize = ptr(0.01)
	}
	if file.Manager.InitialPoolSize == nil {
		file.Manager.InitialPoolSize = ptr(16)
	}
	if file.Manager.TrimOnUpdate == nil {
		file.Manager.TrimOnUpdate = ptr(true)
	}
	if *file.Manager.ChunkSize < 0 {
		return nil, errors.New("manager: chunk size can't be negative")
	}
	if *file.Manager.InitialPoolSize < 0 {
		return nil, errors.New("manager: initial pool size can't be negative")
	}
	if _, err := file.Manager.Curves.build(); err != nil {
		return nil, fmt.Errorf("manager curves: %w", err)
	}

	// presets
	file.descriptions = make(map[string]shaker.Description, len(file.Presets))
	for name, preset := range file.Presets {
		desc, err := preset.Description()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		file.descriptions[name] = desc
	}
	return &file, nil
}

// Returns the manager options described by the file. Rand and
// Sink are left unset.
func (self *File) ManagerOptions() shake2d.Options {
	curves, _ := self.Manager.Curves.build() // validated on Parse
	return shake2d.Options{
		StrengthEnd:     *self.Manager.StrengthEnd,
		UseChunking:     *self.Manager.UseChunking,
		ChunkSize:       *self.Manager.ChunkSize,
		InitialPoolSize: *self.Manager.InitialPoolSize,
		TrimOnUpdate:    *self.Manager.TrimOnUpdate,
		Curves:          curves,
	}
}

// Returns the description for the given preset.
func (self *File) Preset(name string) (shaker.Description, error) {
	desc, found := self.descriptions[name]
	if !found {
		return shaker.Description{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return desc, nil
}

// Returns the preset names in alphabetical order.
func (self *File) PresetNames() []string {
	names := make([]string, 0, len(self.descriptions))
	for name := range self.descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Converts the preset into a validated description.
func (self *PresetConfig) Description() (shaker.Description, error) {
	mode, err := shaker.ParseChannelMode(self.ChannelMode)
	if err != nil {
		return shaker.Description{}, err
	}

	desc := shaker.Description{
		UseChannel:         self.UseChannel,
		ChannelID:          self.ChannelID,
		ChannelMode:        mode,
		ShakeStrength:      self.ShakeStrength,
		DecayFlatRate:      self.DecayFlatRate,
		DecayPercentRate:   self.DecayPercentRate,
		CycleRate:          valueOr(self.CycleRate, 1),
		UsePosition:        valueOr(self.UsePosition, true),
		PositionScale:      valueOr(self.PositionScale, 1),
		RailRotationRate:   self.RailRotationRate,
		UseRotation:        self.UseRotation,
		ScreenRotationRate: self.ScreenRotationRate,
		UseScale:           self.UseScale,
		MaxScaleDifference: self.MaxScaleDifference,
	}
	if self.Curves != nil {
		curves, err := self.Curves.build()
		if err != nil {
			return shaker.Description{}, fmt.Errorf("curves: %w", err)
		}
		desc.Curves = &curves
	}

	if err := desc.Validate(); err != nil {
		return shaker.Description{}, err
	}
	return desc, nil
}

func ptr[T any](value T) *T { return &value }

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}
