package shake2d

import ebimath "github.com/edwinsyarief/ebi-math"

func (self *Manager) update(dt float64) Output {
	if self.trimOnUpdate {
		self.trim()
	}

	// combine outputs
	var output Output
	position := ebimath.V(0, 0)
	for _, index := range self.active {
		entry := self.pool.Entry(index)
		if entry.Finished() {
			continue
		}
		entry.Advance(dt, self.strengthEnd)
		if entry.Finished() {
			continue // finished this tick, no contribution
		}

		offset := entry.Position(&self.curves, self.useChunking, self.chunkSize)
		position = ebimath.V(position.X+offset.X, position.Y+offset.Y)
		output.Rotation += entry.Rotation(&self.curves)
		output.Scale += entry.Scale(&self.curves)
	}
	output.Position = position

	// register and notify
	self.output = output
	if self.sink != nil {
		self.sink.ApplyShake(output)
	}
	return output
}

func (self *Manager) trim() {
	kept := self.active[:0]
	for _, index := range self.active {
		if self.pool.Entry(index).Finished() {
			self.pool.Release(index)
		} else {
			kept = append(kept, index)
		}
	}
	self.active = kept
}
