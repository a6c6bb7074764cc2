package shake2d

// --- errors ---
const (
	unknownChannelMode = "shake2d: channel mode not implemented: "
	multipleChannels   = "shake2d: IsShaking accepts at most one channel as argument"
	negativeChunkSize  = "shake2d: chunk size can't be negative"
	negativeDelta      = "shake2d: can't update with a negative delta"
)
