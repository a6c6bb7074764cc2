package shaker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChannelMode = errors.New("invalid channel mode")
	ErrMissingChannelID   = errors.New("channel enabled without channel id")
	ErrNegativeValue      = errors.New("value can't be negative")
	ErrOutOfRange         = errors.New("value out of range")
)

// Parses a channel mode from its [ChannelMode.String]() name.
func ParseChannelMode(name string) (ChannelMode, error) {
	switch name {
	case "refresh_if_stronger", "":
		return RefreshIfStronger, nil
	case "ignore_if_active":
		return IgnoreIfActive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidChannelMode, name)
	}
}

// Reports whether the mode is one of the known channel modes.
func (self ChannelMode) IsValid() bool {
	return self == RefreshIfStronger || self == IgnoreIfActive
}

// Checks that the description values are within their documented
// ranges. The manager doesn't call this on the hot path; it's meant
// for configuration loaders and tests.
func (self *Description) Validate() error {
	if !self.ChannelMode.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidChannelMode, self.ChannelMode)
	}
	if self.UseChannel && self.ChannelID == "" {
		return ErrMissingChannelID
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"shake strength", self.ShakeStrength},
		{"decay flat rate", self.DecayFlatRate},
		{"decay percent rate", self.DecayPercentRate},
		{"max scale difference", self.MaxScaleDifference},
	}
	for _, field := range nonNegative {
		if field.value < 0 {
			return fmt.Errorf("%s: %w (got %g)", field.name, ErrNegativeValue, field.value)
		}
	}

	if self.CycleRate <= 0 {
		return fmt.Errorf("cycle rate: %w (got %g, want > 0)", ErrOutOfRange, self.CycleRate)
	}
	if self.RailRotationRate < 0 || self.RailRotationRate > 360 {
		return fmt.Errorf("rail rotation rate: %w (got %g, want [0, 360])", ErrOutOfRange, self.RailRotationRate)
	}
	if self.ScreenRotationRate < 0 || self.ScreenRotationRate > 360 {
		return fmt.Errorf("screen rotation rate: %w (got %g, want [0, 360])", ErrOutOfRange, self.ScreenRotationRate)
	}
	return nil
}
