package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/scenes"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quit() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts scenes.Options) *Game {
	if err := fonts.LoadDefaults(config.UI.TextFontSize, config.UI.TitleFontSize, config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPongScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipWelcome := flag.Bool("skip-welcome", config.Debug.SkipWelcome, "Start a match without waiting for Enter")
	cpu := flag.String("cpu", "", "CPU controlled bats: left, right or both")
	difficulty := flag.String("difficulty", "", "CPU difficulty: easy, normal or hard")
	tuning := flag.String("tuning", "", "YAML file overriding ball, bat and collision tuning")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	debug := flag.Bool("debug", config.Debug.ShowColliders, "Draw collider outlines")
	seed := flag.Int64("seed", 0, "Serve direction seed (0 picks one from the clock)")
	flag.Parse()

	config.Debug.SkipWelcome = *skipWelcome
	config.Debug.ShowColliders = *debug

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	leftCPU, rightCPU, err := parseCPU(*cpu)
	if err != nil {
		log.Fatal(err)
	}

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	var watcher *config.Watcher
	if *watch {
		if *tuning == "" {
			log.Fatal("-watch needs -tuning")
		}
		watcher, err = config.NewWatcher(*tuning)
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	// A flag beats the saved difficulty
	if *difficulty != "" {
		d, err := config.ParseBotDifficulty(*difficulty)
		if err != nil {
			log.Fatal(err)
		}
		if saved == nil {
			saved = &systems.SavedSettings{SFXVolume: config.Audio.DefaultSFXVol}
		}
		saved.Difficulty = d.String()
	}

	game := NewGame(scenes.Options{
		LeftCPU:     leftCPU,
		RightCPU:    rightCPU,
		Seed:        *seed,
		SkipWelcome: *skipWelcome,
		Settings:    saved,
		Tuning:      watcher,
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func parseCPU(s string) (left, right bool, err error) {
	switch s {
	case "":
		return false, false, nil
	case "left":
		return true, false, nil
	case "right":
		return false, true, nil
	case "both":
		return true, true, nil
	}
	return false, false, fmt.Errorf("unknown -cpu value %q", s)
}
