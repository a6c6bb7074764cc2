package curve

import (
	"errors"
	"sort"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// A keyframe for [Keyframes] curves.
type Key struct {
	Phase float64
	Value float64
}

// A piecewise linear curve. Phases before the first key or after
// the last key evaluate to the value of the closest key.
//
// Tangents and weights are not supported. If you need Hermite
// interpolation, wrap your own evaluator with [Func].
type Keyframes struct {
	keys []Key
}

// Creates a [Keyframes] curve. Keys are sorted by phase. At least
// one key is required, and two keys can't share the same phase.
func NewKeyframes(keys ...Key) (*Keyframes, error) {
	if len(keys) == 0 {
		return nil, errors.New("keyframes curve requires at least one key")
	}
	sorted := make([]Key, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Phase < sorted[j].Phase })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Phase == sorted[i-1].Phase {
			return nil, errors.New("keyframes curve can't have two keys at the same phase")
		}
	}
	return &Keyframes{keys: sorted}, nil
}

// Evaluate implements [Curve]. A zero value curve has no keys and
// always evaluates to 0; use [NewKeyframes] to build real ones.
func (self *Keyframes) Evaluate(phase float64) float64 {
	keys := self.keys
	if len(keys) == 0 {
		return 0
	}
	if phase <= keys[0].Phase {
		return keys[0].Value
	}
	last := len(keys) - 1
	if phase >= keys[last].Phase {
		return keys[last].Value
	}

	// first key strictly after phase
	index := sort.Search(len(keys), func(i int) bool { return keys[i].Phase > phase })
	a, b := keys[index-1], keys[index]
	t := (phase - a.Phase) / (b.Phase - a.Phase)
	return ebimath.Lerp(a.Value, b.Value, t)
}

// Returns a copy of the curve keys.
func (self *Keyframes) Keys() []Key {
	keys := make([]Key, len(self.keys))
	copy(keys, self.keys)
	return keys
}
