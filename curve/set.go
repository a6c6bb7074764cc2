package curve

// A group of curves for the three shake outputs.
//
// When Split is false, Curve is used for position, rotation and
// scale. When Split is true, each output uses its own curve, and
// falls back to Curve if its specific curve is nil.
type Set struct {
	Split    bool
	Curve    Curve
	Position Curve
	Rotation Curve
	Scale    Curve
}

// Creates a non-split set using the given curve for all outputs.
func Single(curve Curve) Set {
	return Set{Curve: curve}
}

// Returns the curve to use for positions. May be nil.
func (self *Set) ForPosition() Curve { return self.pick(self.Position) }

// Returns the curve to use for rotations. May be nil.
func (self *Set) ForRotation() Curve { return self.pick(self.Rotation) }

// Returns the curve to use for scaling. May be nil.
func (self *Set) ForScale() Curve { return self.pick(self.Scale) }

func (self *Set) pick(specific Curve) Curve {
	if self.Split && specific != nil {
		return specific
	}
	return self.Curve
}
