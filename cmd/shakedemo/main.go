// Package main provides a small ebiten window to try out shake
// presets and tune them while the game is running.
//
// Usage:
//
//	go run ./cmd/shakedemo [flags]
//
// Flags:
//
//	--config <path>   yaml file with manager settings and presets
//	                  (defaults to the embedded shakes.yaml)
//	--watch           reload the config file when it changes
//
// Controls:
//
//	1-9        Trigger the presets, in alphabetical order
//	S          Stop all shakes
//	T          Trim finished shakes manually
//	Q/Escape   Quit
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/edwinsyarief/shake2d"
	"github.com/edwinsyarief/shake2d/config"
	"github.com/edwinsyarief/shake2d/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 640
	screenHeight = 360
	tileSize     = 32
)

var (
	configFlag = flag.String("config", "", "Path to a yaml config file (embedded default if empty)")
	watchFlag  = flag.Bool("watch", false, "Reload the config file when it changes")
)

//go:embed shakes.yaml
var defaultConfig []byte

var presetKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var errQuit = errors.New("quit")

type Game struct {
	manager *shake2d.Manager
	sink    *utils.GeoMSink
	world   *ebiten.Image
	file    *config.File
	presets []string
	watcher *config.Watcher
	status  string
}

func NewGame(file *config.File) *Game {
	sink := &utils.GeoMSink{PivotX: screenWidth / 2.0, PivotY: screenHeight / 2.0}
	opts := file.ManagerOptions()
	opts.Sink = sink
	return &Game{
		manager: shake2d.New(opts),
		sink:    sink,
		world:   ebiten.NewImage(screenWidth, screenHeight),
		file:    file,
		presets: file.PresetNames(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	g.pollWatcher()

	for i, key := range presetKeys {
		if i >= len(g.presets) || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		g.trigger(g.presets[i])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.manager.StopAll()
		g.status = "stopped all shakes"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.manager.Trim()
	}

	g.manager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) trigger(name string) {
	desc, err := g.file.Preset(name)
	if err != nil {
		log.Printf("Preset lookup failed: %v", err)
		return
	}
	if g.manager.Shake(desc) {
		g.status = "started " + name
	} else {
		g.status = "rejected " + name
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Clean(path) != filepath.Clean(*configFlag) {
				continue
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Config watcher error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	file, err := config.Load(path)
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		g.status = "reload failed, see log"
		return
	}

	opts := file.ManagerOptions()
	g.manager.SetStrengthEnd(opts.StrengthEnd)
	g.manager.SetChunking(opts.UseChunking, opts.ChunkSize)
	g.manager.SetCurves(opts.Curves)
	g.manager.SetTrimOnUpdate(opts.TrimOnUpdate)
	g.file = file
	g.presets = file.PresetNames()
	g.status = "config reloaded"
	log.Printf("Reloaded %s (%d presets)", path, len(g.presets))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld()
	screen.Fill(colornames.Black)
	var opts ebiten.DrawImageOptions
	opts.GeoM = g.sink.GeoM
	screen.DrawImage(g.world, &opts)
	ebitenutil.DebugPrint(screen, g.debugText())
}

func (g *Game) drawWorld() {
	g.world.Fill(colornames.Darkslategray)
	for y := 0; y < screenHeight; y += tileSize {
		for x := 0; x < screenWidth; x += tileSize {
			if (x/tileSize+y/tileSize)%2 == 0 {
				continue
			}
			vector.DrawFilledRect(g.world, float32(x), float32(y), tileSize, tileSize, colornames.Slategray, false)
		}
	}
	cx, cy := float32(screenWidth/2), float32(screenHeight/2)
	vector.DrawFilledRect(g.world, cx-12, cy-12, 24, 24, colornames.Gold, false)
}

func (g *Game) debugText() string {
	var b strings.Builder
	for i, name := range g.presets {
		if i >= len(presetKeys) {
			break
		}
		fmt.Fprintf(&b, "[%d] %s\n", i+1, name)
	}
	out := g.manager.Output()
	fmt.Fprintf(&b, "[S] stop all  [T] trim  [Q] quit\n")
	fmt.Fprintf(&b, "active: %d  pooled: %d\n", g.manager.ActiveCount(), g.manager.PooledCount())
	fmt.Fprintf(&b, "offset: (%.0f, %.0f)  rot: %.2f  scale: %.3f\n",
		out.Position.X, out.Position.Y, out.Rotation, out.ScaleFactor())
	if g.status != "" {
		b.WriteString(g.status)
	}
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func loadConfig() (*config.File, error) {
	if *configFlag == "" {
		return config.Parse(defaultConfig)
	}
	return config.Load(*configFlag)
}

func main() {
	flag.Parse()

	file, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	game := NewGame(file)

	if *watchFlag {
		if *configFlag == "" {
			log.Fatal("--watch requires --config")
		}
		watcher, err := config.NewWatcher(filepath.Dir(*configFlag))
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer watcher.Close()
		game.watcher = watcher
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("shake2d demo")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
