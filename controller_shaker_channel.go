package shake2d

import (
	"slices"

	"github.com/edwinsyarief/shake2d/internal"
	"github.com/edwinsyarief/shake2d/shaker"
)

func (self *Manager) requestShake(desc shaker.Description) bool {
	if !desc.ChannelMode.IsValid() {
		panic(unknownChannelMode + desc.ChannelMode.String())
	}
	if desc.ShakeStrength < internal.Epsilon {
		return false
	}

	if desc.UseChannel {
		position := self.findChannel(desc.ChannelID)
		if position != -1 {
			return self.pool.Entry(self.active[position]).Start(desc)
		}
	}

	index := self.pool.Acquire()
	if !self.pool.Entry(index).Start(desc) {
		// can't happen for fresh entries with positive strength,
		// but the index must never leak
		self.pool.Release(index)
		return false
	}
	self.active = append(self.active, index)
	return true
}

// Returns the position in the active list of the first entry
// holding the given channel, or -1 if none.
func (self *Manager) findChannel(channelID string) int {
	for position, index := range self.active {
		if self.pool.Entry(index).OnChannel(channelID) {
			return position
		}
	}
	return -1
}

func (self *Manager) stopChannel(channelID string) {
	position := self.findChannel(channelID)
	if position == -1 {
		return
	}
	self.pool.Release(self.active[position])
	self.active = slices.Delete(self.active, position, position+1)
}
