package curve

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

type curve = Curve

// A few stateless built-in curves.
var (
	// Evaluate(phase) always returns phase.
	Linear curve = linearCurve{}

	// Evaluate(phase) always returns 1. The shake keeps full strength
	// along its rail and only the re-targeting changes its direction.
	Constant curve = constantCurve{}

	// Maps the phase through a quarter sine wave, so the shake
	// lingers a bit near the extremes.
	Sine curve = sineCurve{}

	// Applies a cubic smoothstep on the phase magnitude, preserving
	// the sign. Softer than [Linear] near the center.
	SmoothStep curve = smoothStepCurve{}
)

type linearCurve struct{}

func (linearCurve) Evaluate(phase float64) float64 { return phase }

type constantCurve struct{}

func (constantCurve) Evaluate(phase float64) float64 { return 1 }

type sineCurve struct{}

func (sineCurve) Evaluate(phase float64) float64 {
	return math.Sin(phase * math.Pi / 2.0)
}

type smoothStepCurve struct{}

func (smoothStepCurve) Evaluate(phase float64) float64 {
	t := ebimath.Clamp(ebimath.Abs(phase), 0, 1)
	t = t * t * (3.0 - 2.0*t)
	if phase < 0 {
		return -t
	}
	return t
}

// Returns the curve registered under the given name, or nil if
// the name is unknown. Names are "linear", "constant", "sine" and
// "smoothstep".
func ByName(name string) Curve {
	switch name {
	case "linear":
		return Linear
	case "constant":
		return Constant
	case "sine":
		return Sine
	case "smoothstep":
		return SmoothStep
	default:
		return nil
	}
}
