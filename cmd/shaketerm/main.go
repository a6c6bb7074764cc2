// Package main shakes a box in the terminal. Each terminal cell is
// one chunk, so offsets are always whole cells.
//
// Controls:
//
//	e          Explosion (no channel, stacks freely)
//	r          Rumble on the "rumble" channel (refresh if stronger)
//	b          Boss roar on the "boss" channel (ignored while active)
//	x          Stop all shakes
//	q/Escape   Quit
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/edwinsyarief/shake2d"
	"github.com/edwinsyarief/shake2d/curve"
	"github.com/edwinsyarief/shake2d/shaker"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	frameInterval = 16 * time.Millisecond
	boxWidth      = 12
	boxHeight     = 5
)

var (
	explosion = shaker.Description{
		ShakeStrength:      6,
		DecayFlatRate:      3,
		DecayPercentRate:   1.5,
		CycleRate:          14,
		UsePosition:        true,
		PositionScale:      1,
		RailRotationRate:   150,
		UseScale:           true,
		MaxScaleDifference: 0.3,
	}
	rumble = shaker.Description{
		UseChannel:       true,
		ChannelID:        "rumble",
		ChannelMode:      shaker.RefreshIfStronger,
		ShakeStrength:    2.5,
		DecayFlatRate:    1,
		CycleRate:        20,
		UsePosition:      true,
		PositionScale:    1,
		RailRotationRate: 40,
	}
	roar = shaker.Description{
		ShakeStrength:    8,
		DecayFlatRate:    1.5,
		CycleRate:        8,
		UsePosition:      true,
		PositionScale:    1.5,
		RailRotationRate: 90,
		Curves:           &curve.Set{Curve: curve.SmoothStep},
	}
)

type Game struct {
	screen        tcell.Screen
	width, height int
	manager       *shake2d.Manager
	lastUpdate    time.Time
	status        string

	// Audio
	audioInit bool
}

func NewGame() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	opts := shake2d.DefaultOptions()
	opts.StrengthEnd = 0.5
	opts.ChunkSize = 1
	g := &Game{
		screen:     screen,
		manager:    shake2d.New(opts),
		lastUpdate: time.Now(),
	}
	g.width, g.height = screen.Size()

	if err := g.initAudio(); err != nil {
		// Non-fatal, the demo works without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	return g, nil
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

// Plays a low tone that lasts longer for stronger shakes.
func (g *Game) playRumble(strength float64) {
	if !g.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(time.Duration(strength*40) * time.Millisecond)
	sine, err := generators.SineTone(sampleRate, 60)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(duration, sine))
}

func (g *Game) shake(name string, desc shaker.Description) {
	if g.manager.Shake(desc) {
		g.status = name + " started"
		g.playRumble(desc.ShakeStrength)
	} else {
		g.status = name + " rejected"
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'e':
			g.shake("explosion", explosion)
		case 'r':
			g.shake("rumble", rumble)
		case 'b':
			if g.manager.ShakeOnChannel(roar, true, "boss", shaker.IgnoreIfActive) {
				g.status = "roar started"
				g.playRumble(roar.ShakeStrength)
			} else {
				g.status = "roar ignored, boss channel still active"
			}
		case 'x':
			g.manager.StopAll()
			g.status = "stopped"
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.width, g.height = g.screen.Size()
	}
	return true
}

func (g *Game) update() {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	g.manager.Update(dt)
}

func (g *Game) draw() {
	g.screen.Clear()
	out := g.manager.Output()

	// terminal rows grow downwards
	factor := out.ScaleFactor()
	w := max(int(float64(boxWidth)*factor), 2)
	h := max(int(float64(boxHeight)*factor), 2)
	x0 := g.width/2 - w/2 + int(out.Position.X)
	y0 := g.height/2 - h/2 - int(out.Position.Y)
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if x < 0 || y < 0 || x >= g.width || y >= g.height {
				continue
			}
			g.screen.SetContent(x, y, '█', nil, style)
		}
	}

	lines := []string{
		"[e] explosion  [r] rumble  [b] boss roar  [x] stop  [q] quit",
		fmt.Sprintf("active: %d  pooled: %d  offset: (%.0f, %.0f)",
			g.manager.ActiveCount(), g.manager.PooledCount(), out.Position.X, out.Position.Y),
		g.status,
	}
	for row, line := range lines {
		for col, r := range line {
			g.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		}
	}
	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.update()
			g.draw()
		}
	}
}

func main() {
	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start terminal: %v", err)
	}
	defer game.screen.Fini()
	game.run()
}
