// This package defines the [Curve] interface that shake2d uses to
// shape the oscillation of each shake, and provides a few default
// implementations.
//
// The phase passed to a curve is a triangle wave that travels
// between -1 and 1 and back. A curve maps that phase to a shaping
// scalar that multiplies the shake strength. [Linear] leaves the
// triangle wave untouched, which already produces a decent "jolt"
// feel. Smoother or snappier shapes can be obtained with [Sine],
// [SmoothStep] or custom [Keyframes].
//
// Curves are expected to be stateless, or at least safe to evaluate
// multiple times per tick with the same phase.
package curve

// The interface for shake curves.
//
// Evaluate receives a phase in [-1, 1] and returns the shaping
// scalar for that phase. Returning values outside [-1, 1] is allowed,
// it only exaggerates the shake.
type Curve interface {
	Evaluate(phase float64) float64
}

// Adapter to use ordinary functions as curves.
type Func func(phase float64) float64

// Evaluate calls the underlying function.
func (self Func) Evaluate(phase float64) float64 { return self(phase) }
