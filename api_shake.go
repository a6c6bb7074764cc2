package shake2d

import "github.com/edwinsyarief/shake2d/shaker"

// --- requests ---

// Starts a screen shake with the given description. Returns false
// if the request was rejected by the channel mode of the shake
// already on the same channel, or if the shake strength is not
// positive.
//
// Shakes without a channel always start on a fresh entry. Shakes
// with a channel reuse the active entry for that channel if there's
// one, and the description's [shaker.ChannelMode] decides whether the
// new request replaces the current shake or is ignored.
//
// Refreshing a channel keeps its oscillation phase and rail, so the
// shake doesn't jump.
//
// Unknown channel modes make the function panic.
func (self *Manager) Shake(desc shaker.Description) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.requestShake(desc)
}

// Same as [Manager.Shake](), but overriding the channel settings
// of the description. Handy when a single preset is used on
// different channels.
func (self *Manager) ShakeOnChannel(desc shaker.Description, useChannel bool, channelID string, mode shaker.ChannelMode) bool {
	desc.UseChannel = useChannel
	desc.ChannelID = channelID
	desc.ChannelMode = mode
	return self.Shake(desc)
}

// --- stopping ---

// Stops the shake on the given channel immediately. Stopping a
// channel that's not shaking is possible and safe.
func (self *Manager) StopChannel(channelID string) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.stopChannel(channelID)
}

// Stops all shakes immediately, including shakes without a channel.
// Commonly used on scene transitions.
func (self *Manager) StopAll() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	for _, index := range self.active {
		self.pool.Release(index)
	}
	self.active = self.active[:0]
}

// Moves finished shakes back to the entry pool. This happens
// automatically on each [Manager.Update]() unless trimming on
// update has been disabled.
//
// Finished shakes that are not trimmed don't produce any output,
// but they are still iterated on each update, and a channel's
// finished shake will be reused by the next request on that channel.
func (self *Manager) Trim() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.trim()
}

// --- updates ---

// Advances all active shakes by dt seconds and returns the combined
// output. If the manager has a [Sink], the output is also passed
// to it.
//
// Shakes that finish during this update don't contribute to the
// output.
func (self *Manager) Update(dt float64) Output {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if dt < 0 {
		panic(negativeDelta)
	}
	return self.update(dt)
}

// Returns the output computed by the most recent [Manager.Update]().
func (self *Manager) Output() Output {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.output
}

// --- queries ---

// If no channel is specified, the function returns whether any
// shake is active. If a channel is specified, the function will only
// return whether that specific channel is shaking. Passing multiple
// channels will make the function panic.
func (self *Manager) IsShaking(channel ...string) bool {
	if len(channel) > 1 {
		panic(multipleChannels)
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if len(channel) == 0 {
		for _, index := range self.active {
			if !self.pool.Entry(index).Finished() {
				return true
			}
		}
		return false
	}

	position := self.findChannel(channel[0])
	return position != -1 && !self.pool.Entry(self.active[position]).Finished()
}

// Returns the current strength of the shake on the given channel.
// The second value is false if no shake holds the channel.
func (self *Manager) ChannelStrength(channelID string) (float64, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	position := self.findChannel(channelID)
	if position == -1 {
		return 0, false
	}
	return self.pool.Entry(self.active[position]).Strength(), true
}

// Returns the number of shakes in the active list, including
// finished shakes that haven't been trimmed yet.
func (self *Manager) ActiveCount() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.active)
}

// Returns the number of idle entries in the pool.
func (self *Manager) PooledCount() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.pool.Free()
}

// Returns the total number of entries ever allocated by the
// manager, active or pooled.
func (self *Manager) EntryCount() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.pool.Len()
}
