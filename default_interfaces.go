package shake2d

import "github.com/edwinsyarief/shake2d/curve"

// Used when the manager curves don't define a default curve.
var defaultCurve curve.Curve = curve.Linear

func withDefaultCurve(curves curve.Set) curve.Set {
	if curves.Curve == nil {
		curves.Curve = defaultCurve
	}
	return curves
}
