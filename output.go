package shake2d

import ebimath "github.com/edwinsyarief/ebi-math"

// The combined result of all active shakes for a single update.
type Output struct {
	// Positional offset, to be used as the local position of the
	// shaken transform (or added to the camera position).
	Position ebimath.Vector

	// Screen rotation in degrees, to be used as the z rotation of
	// the shaken transform.
	Rotation float64

	// Scale delta. Use [Output.ScaleFactor]() to get the multiplier.
	Scale float64
}

// Returns the scale multiplier for the output's scale delta.
//
// Positive deltas map to 1 + delta. Negative deltas map to
// 1/(1 - delta), so a delta of -d zooms out by exactly the same
// factor that +d zooms in. Notice that this is not the same as
// 1 - delta, which would zoom in for negative deltas too.
func (self Output) ScaleFactor() float64 {
	if self.Scale >= 0 {
		return 1 + self.Scale
	}
	return 1.0 / (1.0 - self.Scale)
}

// Reports whether the output is exactly zero.
func (self Output) IsZero() bool {
	return self.Position.X == 0 && self.Position.Y == 0 && self.Rotation == 0 && self.Scale == 0
}

// The interface for transform sinks. After each [Manager.Update](),
// the manager passes the new output to its sink, if any.
//
// Sinks are called while the manager is locked, so they must not
// call back into the manager.
type Sink interface {
	ApplyShake(output Output)
}

// Adapter to use ordinary functions as sinks.
type SinkFunc func(output Output)

// ApplyShake calls the underlying function.
func (self SinkFunc) ApplyShake(output Output) { self(output) }
