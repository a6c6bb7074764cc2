// This package defines the [Description] of a screen shake request
// and the [ChannelMode] policies used to resolve conflicts between
// requests sent to the same channel.
//
// Descriptions are plain values. They are usually built from
// configuration data (see the config package), but nothing stops
// you from declaring them directly in code:
//
//	var Explosion = shaker.Description{
//	    ShakeStrength: 0.6,
//	    DecayFlatRate: 0.4,
//	    CycleRate:     18,
//	    UsePosition:   true,
//	    PositionScale: 1,
//	    RailRotationRate: 120,
//	}
//
// All magnitudes are expressed in the units of the transform that
// will receive the shake (world units for most cameras), and all
// rates are per second, so shakes are tick-rate independent.
package shaker

import (
	"strconv"

	"github.com/edwinsyarief/shake2d/curve"
)

// Used by shake2d to decide what happens when a shake request
// targets a channel that is already holding a shake.
//
// Here's an example of when channels are useful:
//   - Continuous engine rumble that is refreshed every frame while
//     the engine is on, using [RefreshIfStronger].
//   - Boss roar that must play out entirely before being triggered
//     again, using [IgnoreIfActive].
//   - Explosions that can stack freely, not using channels at all.
type ChannelMode uint8

const (
	// The request replaces the channel's shake if its strength
	// is greater or equal than the channel's current strength.
	RefreshIfStronger ChannelMode = iota

	// The request is ignored unless the channel's shake is finished.
	IgnoreIfActive
)

// Returns the snake case name of the mode.
func (self ChannelMode) String() string {
	switch self {
	case RefreshIfStronger:
		return "refresh_if_stronger"
	case IgnoreIfActive:
		return "ignore_if_active"
	default:
		return "ChannelMode(" + strconv.Itoa(int(self)) + ")"
	}
}

// A description of a screen shake. Descriptions are never modified
// by shake2d, so they can be shared and reused freely.
type Description struct {
	// Whether or not to use a channel. Shakes without a channel can't
	// be individually stopped before completion.
	UseChannel bool
	// The channel identifier. Ignored if UseChannel is false.
	ChannelID string
	// How the request interacts with a shake already on the channel.
	ChannelMode ChannelMode

	// How hard to shake. Must be positive for the request to
	// have any effect.
	ShakeStrength float64
	// Flat strength decay per second.
	DecayFlatRate float64
	// Percent strength decay per second.
	DecayPercentRate float64
	// Rate at which the oscillation cycle advances. Higher is faster.
	// Must be positive, or the shake never crosses the center and
	// never finishes.
	CycleRate float64

	// Whether or not to offset the position.
	UsePosition bool
	// Position multiplier, relative to the other outputs.
	PositionScale float64
	// Max rail rotation in degrees applied on each half-cycle, in [0, 360].
	RailRotationRate float64

	// Whether or not to rotate the screen.
	UseRotation bool
	// Max screen rotation in degrees, in [0, 360].
	ScreenRotationRate float64

	// Whether or not to scale the screen.
	UseScale bool
	// Max scale delta. The shake picks values in [-max, +max], and
	// negative deltas are converted to reciprocal zoom factors. Must
	// be positive.
	MaxScaleDifference float64

	// Optional curves overriding the manager's default curves.
	Curves *curve.Set
}
