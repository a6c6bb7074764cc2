package shake2d

import (
	"sync"

	"github.com/edwinsyarief/shake2d/curve"
	"github.com/edwinsyarief/shake2d/internal"
)

// Uniform random source used to re-target shakes. FloatRange(min, max)
// must return a value in [min, max), or min when both are equal.
// *ebimath.Rand implements it.
//
// The exact generator doesn't matter for the effect. Inject a seeded
// one if you need reproducible shakes, e.g. for replays or tests:
//
//	opts.Rand = ebimath.RandomWidthSeed(replay.Seed)
type Rand = internal.Rand

// Configuration for [New]. See [DefaultOptions]() for the
// recommended starting values.
type Options struct {
	// Shakes are considered finished once their strength decays to
	// or below this value.
	StrengthEnd float64

	// Whether or not to snap position offsets to multiples of
	// ChunkSize. Mostly relevant for pixel art games, where
	// ChunkSize is typically 1 / pixels per unit.
	UseChunking bool
	ChunkSize   float64

	// Number of entries to preallocate. Powers of 2 are recommended.
	// The pool grows on demand if more shakes are active at once.
	InitialPoolSize int

	// Whether or not to trim finished shakes at the start of every
	// [Manager.Update](). If disabled, you will have to call
	// [Manager.Trim]() yourself.
	TrimOnUpdate bool

	// Default curves, used by shakes that don't override them.
	// If Curves.Curve is nil, [curve.Linear] is used.
	Curves curve.Set

	// Random source. If nil, a time seeded ebimath.Random() is used.
	// The manager lock guards it, so don't share it between managers.
	Rand Rand

	// Optional sink receiving the output of each update.
	Sink Sink
}

// Returns the recommended options: strength end 1, chunking
// enabled with size 0.01, 16 preallocated entries, automatic
// trimming and linear curves.
func DefaultOptions() Options {
	return Options{
		StrengthEnd:     1.0,
		UseChunking:     true,
		ChunkSize:       0.01,
		InitialPoolSize: 16,
		TrimOnUpdate:    true,
		Curves:          curve.Single(curve.Linear),
	}
}

// Manager blends all active screen shakes into a single [Output].
//
// Managers are regular values owned by whatever runs your game
// loop; there's no global instance. All methods are safe for
// concurrent use, but most games will only ever call them from
// the update thread.
type Manager struct {
	mutex sync.Mutex

	// settings
	strengthEnd  float64
	useChunking  bool
	chunkSize    float64
	trimOnUpdate bool
	curves       curve.Set
	sink         Sink

	// entries
	pool   *internal.Pool
	active []int // pool indices, in request order

	// last update result
	output Output
}

// Creates a new manager with the given options.
func New(opts Options) *Manager {
	if opts.ChunkSize < 0 {
		panic(negativeChunkSize)
	}
	return &Manager{
		strengthEnd:  opts.StrengthEnd,
		useChunking:  opts.UseChunking,
		chunkSize:    opts.ChunkSize,
		trimOnUpdate: opts.TrimOnUpdate,
		curves:       withDefaultCurve(opts.Curves),
		sink:         opts.Sink,
		pool:         internal.NewPool(opts.InitialPoolSize, opts.Rand),
		active:       make([]int, 0, max(opts.InitialPoolSize, 0)),
	}
}

// --- settings ---

// Returns the strength end. See [Options].StrengthEnd.
func (self *Manager) StrengthEnd() float64 {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.strengthEnd
}

// Sets the strength at which shakes are considered finished.
// Takes effect on the next half-cycle of each shake.
func (self *Manager) SetStrengthEnd(strengthEnd float64) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.strengthEnd = strengthEnd
}

// Enables or disables chunking. See [Options].UseChunking.
func (self *Manager) SetChunking(enabled bool, chunkSize float64) {
	if chunkSize < 0 {
		panic(negativeChunkSize)
	}
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.useChunking = enabled
	self.chunkSize = chunkSize
}

// Returns whether chunking is enabled and the chunk size.
func (self *Manager) Chunking() (enabled bool, chunkSize float64) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.useChunking, self.chunkSize
}

// Sets the default curves.
func (self *Manager) SetCurves(curves curve.Set) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.curves = withDefaultCurve(curves)
}

// Enables or disables automatic trimming. See [Options].TrimOnUpdate.
func (self *Manager) SetTrimOnUpdate(trim bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.trimOnUpdate = trim
}

// Sets the sink that receives the output of each update.
// Passing nil removes the current sink.
func (self *Manager) SetSink(sink Sink) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.sink = sink
}
