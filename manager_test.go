package shake2d

import (
	"math"
	"sync"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/shake2d/curve"
	"github.com/edwinsyarief/shake2d/shaker"
)

// centerRand always returns the middle of the range, so rails
// point up and targets are zero.
type centerRand struct{}

func (centerRand) FloatRange(min, max float64) float64 { return (min + max) / 2 }

func testOptions() Options {
	return Options{
		StrengthEnd:     1,
		InitialPoolSize: 4,
		TrimOnUpdate:    true,
		Curves:          curve.Single(curve.Linear),
		Rand:            centerRand{},
	}
}

func testDescription(strength float64) shaker.Description {
	return shaker.Description{
		ShakeStrength: strength,
		DecayFlatRate: 2,
		CycleRate:     1,
		UsePosition:   true,
		PositionScale: 1,
	}
}

func TestManagerChannelExclusivity(t *testing.T) {
	manager := New(testOptions())
	for i := 0; i < 10; i++ {
		manager.ShakeOnChannel(testDescription(float64(i+1)), true, "rumble", shaker.RefreshIfStronger)
		manager.Update(0.25)
	}
	if got := manager.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount() = %d, want 1", got)
	}
	if strength, found := manager.ChannelStrength("rumble"); !found || strength != 10 {
		t.Errorf("ChannelStrength() = %v, %v; want 10, true", strength, found)
	}
}

func TestManagerRefreshIfStronger(t *testing.T) {
	manager := New(testOptions())
	if !manager.ShakeOnChannel(testDescription(5), true, "hit", shaker.RefreshIfStronger) {
		t.Fatal("first request rejected")
	}
	if manager.ShakeOnChannel(testDescription(3), true, "hit", shaker.RefreshIfStronger) {
		t.Error("weaker request accepted")
	}
	if strength, _ := manager.ChannelStrength("hit"); strength != 5 {
		t.Errorf("strength = %v, want 5", strength)
	}
	if !manager.ShakeOnChannel(testDescription(8), true, "hit", shaker.RefreshIfStronger) {
		t.Error("stronger request rejected")
	}
	if strength, _ := manager.ChannelStrength("hit"); strength != 8 {
		t.Errorf("strength = %v, want 8", strength)
	}
}

func TestManagerIgnoreIfActive(t *testing.T) {
	opts := testOptions()
	opts.TrimOnUpdate = false
	manager := New(opts)

	if !manager.ShakeOnChannel(testDescription(5), true, "boss", shaker.IgnoreIfActive) {
		t.Fatal("first request rejected")
	}
	if manager.ShakeOnChannel(testDescription(50), true, "boss", shaker.IgnoreIfActive) {
		t.Error("request accepted while the channel is active")
	}

	for tick := 0; tick < 100 && manager.IsShaking("boss"); tick++ {
		manager.Update(0.5)
	}
	if manager.IsShaking("boss") {
		t.Fatal("boss channel never finished")
	}
	if manager.ActiveCount() != 1 {
		t.Fatalf("ActiveCount() = %d, want the untrimmed finished entry", manager.ActiveCount())
	}

	if !manager.ShakeOnChannel(testDescription(50), true, "boss", shaker.IgnoreIfActive) {
		t.Error("request rejected on a finished channel")
	}
	if manager.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, want the finished entry to be reused", manager.ActiveCount())
	}
	if strength, _ := manager.ChannelStrength("boss"); strength != 50 {
		t.Errorf("strength = %v, want 50", strength)
	}
}

func TestManagerScenario(t *testing.T) {
	manager := New(testOptions())
	desc := testDescription(10)
	desc.UseChannel, desc.ChannelID = true, "scenario"
	manager.Shake(desc)

	// the center is crossed every 4 ticks, each crossing removes 2 * 0.5
	for tick := 1; tick <= 36; tick++ {
		manager.Update(0.5)
		strength, found := manager.ChannelStrength("scenario")
		crossings := tick / 4
		switch {
		case crossings < 9:
			if !found || strength != 10-float64(crossings) {
				t.Fatalf("tick %d: strength = %v, %v; want %v", tick, strength, found, 10-float64(crossings))
			}
		default:
			// finished on crossing 9, trimmed on the next update
			if found && strength != 0 {
				t.Fatalf("tick %d: strength = %v, want finished", tick, strength)
			}
		}
	}
	manager.Update(0.5)
	if manager.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d after trimming, want 0", manager.ActiveCount())
	}
}

func TestManagerStopChannel(t *testing.T) {
	manager := New(testOptions())
	manager.Shake(testDescription(5))
	manager.ShakeOnChannel(testDescription(5), true, "a", shaker.RefreshIfStronger)
	manager.ShakeOnChannel(testDescription(5), true, "b", shaker.RefreshIfStronger)

	manager.StopChannel("missing")
	if manager.ActiveCount() != 3 {
		t.Fatalf("ActiveCount() = %d after stopping a missing channel, want 3", manager.ActiveCount())
	}

	manager.StopChannel("a")
	if manager.ActiveCount() != 2 || manager.IsShaking("a") || !manager.IsShaking("b") {
		t.Errorf("after StopChannel(a): active = %d, a = %v, b = %v",
			manager.ActiveCount(), manager.IsShaking("a"), manager.IsShaking("b"))
	}

	// shakes without channel are not matched by the empty id
	manager.StopChannel("")
	if manager.ActiveCount() != 2 {
		t.Errorf("StopChannel(\"\") stopped a shake without channel")
	}
}

func TestManagerStopAllReusesEntries(t *testing.T) {
	opts := testOptions()
	opts.InitialPoolSize = 0
	manager := New(opts)
	for i := 0; i < 3; i++ {
		manager.Shake(testDescription(5))
	}
	if manager.EntryCount() != 3 {
		t.Fatalf("EntryCount() = %d, want 3", manager.EntryCount())
	}

	manager.StopAll()
	if manager.ActiveCount() != 0 || manager.PooledCount() != 3 {
		t.Fatalf("after StopAll(): active = %d, pooled = %d; want 0, 3", manager.ActiveCount(), manager.PooledCount())
	}
	if manager.IsShaking() {
		t.Error("IsShaking() = true after StopAll()")
	}

	manager.Shake(testDescription(5))
	if manager.EntryCount() != 3 {
		t.Errorf("EntryCount() = %d after reuse, want 3", manager.EntryCount())
	}
}

func TestManagerRejectsNonPositiveStrength(t *testing.T) {
	manager := New(testOptions())
	for _, strength := range []float64{0, -3} {
		if manager.Shake(testDescription(strength)) {
			t.Errorf("Shake() accepted strength %v", strength)
		}
	}
	if manager.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, want 0", manager.ActiveCount())
	}
}

func TestManagerUnknownChannelModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Shake() with an unknown channel mode didn't panic")
		}
	}()
	desc := testDescription(5)
	desc.ChannelMode = shaker.ChannelMode(9)
	New(testOptions()).Shake(desc)
}

func TestManagerIsShakingPanicsOnMultipleChannels(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IsShaking() with two channels didn't panic")
		}
	}()
	New(testOptions()).IsShaking("a", "b")
}

func TestManagerUpdateSumsShakes(t *testing.T) {
	single := New(testOptions())
	double := New(testOptions())
	single.Shake(testDescription(10))
	double.Shake(testDescription(10))
	double.Shake(testDescription(10))

	for tick := 0; tick < 7; tick++ {
		one, two := single.Update(0.3), double.Update(0.3)
		if math.Abs(two.Position.X-2*one.Position.X) > 1e-9 || math.Abs(two.Position.Y-2*one.Position.Y) > 1e-9 {
			t.Fatalf("tick %d: two shakes = (%v, %v), want twice (%v, %v)",
				tick+1, two.Position.X, two.Position.Y, one.Position.X, one.Position.Y)
		}
		if two.Rotation != 0 || two.Scale != 0 {
			t.Fatalf("tick %d: rotation and scale are disabled but got %v, %v", tick+1, two.Rotation, two.Scale)
		}
	}

	// first tick: phase 0.3 with the rail pointing up
	fresh := New(testOptions())
	fresh.Shake(testDescription(10))
	out := fresh.Update(0.3)
	if math.Abs(out.Position.X) > 1e-9 || math.Abs(out.Position.Y-3) > 1e-9 {
		t.Errorf("first update = (%v, %v), want (0, 3)", out.Position.X, out.Position.Y)
	}
}

func TestManagerFinishingShakeContributesNothing(t *testing.T) {
	manager := New(testOptions())
	desc := testDescription(10)
	desc.DecayFlatRate = 100
	manager.Shake(desc)

	for tick := 1; tick <= 3; tick++ {
		if out := manager.Update(0.5); out.IsZero() {
			t.Fatalf("tick %d: output is zero before finishing", tick)
		}
	}
	out := manager.Update(0.5) // crossing on tick 4 finishes the shake
	if !out.IsZero() {
		t.Errorf("finishing update = %+v, want zero", out)
	}
	if manager.IsShaking() {
		t.Error("IsShaking() = true after finishing")
	}
}

func TestManagerTrim(t *testing.T) {
	opts := testOptions()
	opts.TrimOnUpdate = false
	manager := New(opts)
	desc := testDescription(10)
	desc.DecayFlatRate = 100
	manager.Shake(desc)
	manager.Shake(testDescription(10))

	for tick := 0; tick < 4; tick++ {
		manager.Update(0.5)
	}
	if manager.ActiveCount() != 2 {
		t.Fatalf("ActiveCount() = %d before trimming, want 2", manager.ActiveCount())
	}
	manager.Trim()
	if manager.ActiveCount() != 1 || manager.PooledCount() != 3 {
		t.Errorf("after Trim(): active = %d, pooled = %d; want 1, 3", manager.ActiveCount(), manager.PooledCount())
	}
}

func TestManagerSink(t *testing.T) {
	var received []Output
	opts := testOptions()
	opts.Sink = SinkFunc(func(output Output) { received = append(received, output) })
	manager := New(opts)
	manager.Shake(testDescription(10))

	out := manager.Update(0.3)
	if len(received) != 1 || !sameOutput(received[0], out) {
		t.Fatalf("sink received %+v, want [%+v]", received, out)
	}
	if !sameOutput(manager.Output(), out) {
		t.Errorf("Output() = %+v, want %+v", manager.Output(), out)
	}

	manager.SetSink(nil)
	manager.Update(0.3)
	if len(received) != 1 {
		t.Errorf("sink called after removal")
	}
}

func sameOutput(a, b Output) bool {
	return a.Position.X == b.Position.X && a.Position.Y == b.Position.Y &&
		a.Rotation == b.Rotation && a.Scale == b.Scale
}

func TestManagerSeededRandIsReproducible(t *testing.T) {
	newManager := func() *Manager {
		opts := testOptions()
		opts.Rand = ebimath.RandomWidthSeed(42)
		return New(opts)
	}
	desc := testDescription(10)
	desc.RailRotationRate = 120
	desc.UseRotation, desc.ScreenRotationRate = true, 30
	desc.UseScale, desc.MaxScaleDifference = true, 0.2

	first, second := newManager(), newManager()
	first.Shake(desc)
	second.Shake(desc)
	for tick := 1; tick <= 40; tick++ {
		a, b := first.Update(0.3), second.Update(0.3)
		if !sameOutput(a, b) {
			t.Fatalf("tick %d: outputs differ with the same seed: %+v and %+v", tick, a, b)
		}
	}
}

func TestManagerChunking(t *testing.T) {
	opts := testOptions()
	opts.UseChunking = true
	opts.ChunkSize = 0.5
	manager := New(opts)
	manager.Shake(testDescription(10))

	// phase 0.13 gives an offset of 1.3, snapped to 1.5
	out := manager.Update(0.13)
	if math.Abs(out.Position.Y-1.5) > 1e-9 {
		t.Errorf("chunked offset = %v, want 1.5", out.Position.Y)
	}
}

func TestManagerConcurrentUse(t *testing.T) {
	manager := New(testOptions())
	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch i % 4 {
				case 0:
					manager.Shake(testDescription(5))
				case 1:
					manager.ShakeOnChannel(testDescription(5), true, "shared", shaker.RefreshIfStronger)
				case 2:
					manager.Update(1.0 / 60.0)
				default:
					if worker == 0 {
						manager.StopChannel("shared")
					}
				}
			}
		}(worker)
	}
	wg.Wait()
	if manager.ActiveCount()+manager.PooledCount() != manager.EntryCount() {
		t.Errorf("active %d + pooled %d != total %d", manager.ActiveCount(), manager.PooledCount(), manager.EntryCount())
	}
}

func TestOutputScaleFactor(t *testing.T) {
	tests := []struct {
		scale float64
		want  float64
	}{
		{0, 1},
		{0.5, 1.5},
		{-1, 0.5},
		{-0.25, 0.8},
	}
	for _, tt := range tests {
		if got := (Output{Scale: tt.scale}).ScaleFactor(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ScaleFactor() for %v = %v, want %v", tt.scale, got, tt.want)
		}
	}
}
