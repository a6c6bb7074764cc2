package internal

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/shake2d/curve"
	"github.com/edwinsyarief/shake2d/shaker"
)

// Strengths below this are considered zero.
const Epsilon = 1e-6

const unknownChannelMode = "shake2d: channel mode not implemented: "

// The state of a single shake request.
//
// Entries are owned either by a [Pool] (idle) or by the manager's
// active list. An idle entry has no description. A finished entry
// keeps its description until it's released back to the pool, but
// it doesn't advance nor produce output anymore.
type Entry struct {
	desc *shaker.Description
	rand Rand

	currentStrength float64
	initialStrength float64

	railAngle      float64 // degrees
	targetRotation float64
	targetScale    float64

	phase     float64
	direction bool // true when moving towards +1
}

// Creates an idle entry.
func NewEntry(rnd Rand) *Entry {
	if rnd == nil {
		rnd = NewRand()
	}
	entry := &Entry{rand: rnd}
	entry.Reset()
	return entry
}

// Returns the entry description, or nil if the entry is idle.
func (self *Entry) Description() *shaker.Description { return self.desc }

func (self *Entry) Strength() float64        { return self.currentStrength }
func (self *Entry) InitialStrength() float64 { return self.initialStrength }
func (self *Entry) RailAngle() float64       { return self.railAngle }
func (self *Entry) Phase() float64           { return self.phase }
func (self *Entry) Direction() bool          { return self.direction }

// Reports whether the entry is idle or its strength has reached zero.
func (self *Entry) Finished() bool {
	return ebimath.Abs(self.currentStrength) < Epsilon
}

// Reports whether the entry holds a channel description with the given id.
func (self *Entry) OnChannel(id string) bool {
	return self.desc != nil && self.desc.UseChannel && self.desc.ChannelID == id
}

// Attempts to start the given shake on the entry, applying the
// description's channel mode against the entry's current state.
// Returns false if the request was rejected.
//
// Phase, direction and rail angle are preserved, so refreshing a
// channel doesn't snap the animation.
func (self *Entry) Start(desc shaker.Description) bool {
	switch desc.ChannelMode {
	case shaker.RefreshIfStronger:
		if desc.ShakeStrength < self.currentStrength {
			return false
		}
	case shaker.IgnoreIfActive:
		if !self.Finished() {
			return false
		}
	default:
		panic(unknownChannelMode + desc.ChannelMode.String())
	}

	self.desc = &desc
	self.currentStrength = desc.ShakeStrength
	self.initialStrength = desc.ShakeStrength
	return true
}

// Clears the entry so it can be pooled.
func (self *Entry) Reset() {
	self.desc = nil
	self.currentStrength = 0
	self.initialStrength = 0
	self.targetRotation = 0
	self.targetScale = 0
	self.railAngle = self.rand.FloatRange(-180, 180)
	self.direction = true
	self.phase = 0
}

// Advances the oscillation by dt seconds. Decay and re-targeting
// only happen when the phase crosses the center, using the dt of
// the crossing tick.
//
// The step is consumed leg by leg, so a single long tick that
// bounces on an edge still crosses the center once per half
// traversal.
func (self *Entry) Advance(dt, strengthEnd float64) {
	if self.Finished() || self.desc == nil {
		return
	}

	remaining := self.desc.CycleRate * dt
	for remaining > 0 && !self.Finished() {
		// next stop: the center if still behind it, the edge otherwise
		sign := 1.0
		if !self.direction {
			sign = -1.0
		}
		stop := sign
		if self.phase*sign < 0 {
			stop = 0
		}

		distance := (stop - self.phase) * sign
		if remaining < distance {
			self.phase += remaining * sign
			return
		}
		remaining -= distance
		self.phase = stop
		if stop == 0 {
			self.passCenter(dt, strengthEnd)
		} else {
			self.direction = !self.direction
		}
	}
}

func (self *Entry) passCenter(dt, strengthEnd float64) {
	// decay
	self.currentStrength *= 1 - self.desc.DecayPercentRate*dt
	self.currentStrength -= self.desc.DecayFlatRate * dt
	if self.currentStrength <= strengthEnd {
		self.currentStrength = 0
		return
	}

	// re-targeting
	rail := self.desc.RailRotationRate
	self.railAngle += self.rand.FloatRange(-rail, rail)
	screen := self.desc.ScreenRotationRate
	self.targetRotation = self.rand.FloatRange(-screen, screen)
	scale := self.desc.MaxScaleDifference
	self.targetScale = self.rand.FloatRange(-scale, scale)
}

// Returns the positional offset for the entry. The fallback curves
// are used unless the description overrides them.
func (self *Entry) Position(fallback *curve.Set, useChunking bool, chunkSize float64) ebimath.Vector {
	if !self.desc.UsePosition || ebimath.Abs(self.desc.PositionScale) < Epsilon {
		return ebimath.V(0, 0)
	}

	value := self.currentStrength * self.evaluate((*curve.Set).ForPosition, fallback)
	up := ebimath.V(0, value*self.desc.PositionScale)
	pos := up.RotateAround(ebimath.V(0, 0), ebimath.ToRadians(self.railAngle))
	if useChunking {
		pos = ebimath.V(Chunk(pos.X, chunkSize), Chunk(pos.Y, chunkSize))
	}
	return pos
}

// Returns the screen rotation for the entry, in degrees.
func (self *Entry) Rotation(fallback *curve.Set) float64 {
	if !self.desc.UseRotation {
		return 0
	}
	return self.targetRotation * self.strengthRatio() * self.evaluate((*curve.Set).ForRotation, fallback)
}

// Returns the scale delta for the entry.
func (self *Entry) Scale(fallback *curve.Set) float64 {
	if !self.desc.UseScale {
		return 0
	}
	return self.targetScale * self.strengthRatio() * self.evaluate((*curve.Set).ForScale, fallback)
}

func (self *Entry) strengthRatio() float64 {
	if self.initialStrength < Epsilon {
		return 0
	}
	return self.currentStrength / self.initialStrength
}

func (self *Entry) evaluate(pick func(*curve.Set) curve.Curve, fallback *curve.Set) float64 {
	var selected curve.Curve
	if self.desc.Curves != nil {
		selected = pick(self.desc.Curves)
	}
	if selected == nil && fallback != nil {
		selected = pick(fallback)
	}
	if selected == nil {
		selected = curve.Linear
	}
	return selected.Evaluate(self.phase)
}

// Snaps the value to a multiple of size. The quotient is truncated
// towards zero and bumped by one when positive, which gives the
// stair-step look of pixel snapping instead of symmetric rounding.
// Non-positive sizes disable snapping.
func Chunk(value, size float64) float64 {
	if size <= 0 {
		return value
	}
	steps := int(value / size)
	if steps > 0 {
		steps++
	}
	return float64(steps) * size
}
