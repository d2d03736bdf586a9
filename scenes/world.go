package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/assets"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configure a PongScene.
type Options struct {
	LeftCPU     bool
	RightCPU    bool
	Seed        int64
	SkipWelcome bool
	Settings    *systems.SavedSettings // nil keeps the defaults
	Tuning      *cfg.Watcher           // nil disables hot reload
}

// PongScene runs one court: both bats, the ball and the match.
type PongScene struct {
	ecs       *ecs.ECS
	options   Options
	overlay   *ui.Overlay
	offscreen *ebiten.Image
	once      sync.Once
	quit      bool
}

func NewPongScene(options Options) *PongScene {
	return &PongScene{options: options}
}

func (ps *PongScene) Update() {
	ps.once.Do(ps.configure)

	ps.reloadTuning()
	ps.ecs.Update()

	if match, ok := systems.MatchSnapshot(ps.ecs); ok && ui.Visible(match.State) && ps.overlay != nil {
		sb := systems.CurrentScoreboard(ps.ecs)
		ps.overlay.Refresh(ui.Status{
			State:        match.State,
			Winner:       match.Winner(),
			LeftWins:     sb.LeftWins,
			RightWins:    sb.RightWins,
			LongestRally: sb.LongestRally,
		})
		ps.overlay.Update()
	}

	if systems.ExitRequested(ps.ecs) {
		ps.quit = true
	}
}

// Quit reports whether the player asked to leave.
func (ps *PongScene) Quit() bool {
	return ps.quit
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}

	target := screen
	if assets.ScanlineShader != nil {
		if ps.offscreen == nil {
			ps.offscreen = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
		}
		target = ps.offscreen
	}

	ps.ecs.Draw(target)
	if match, ok := systems.MatchSnapshot(ps.ecs); ok && ui.Visible(match.State) && ps.overlay != nil {
		ps.overlay.Draw(target)
	}

	if target != screen {
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = ps.offscreen
		op.Uniforms = map[string]any{"Intensity": float32(cfg.UI.ScanlineIntensity)}
		screen.DrawRectShader(cfg.C.Width, cfg.C.Height, assets.ScanlineShader, op)
	}
}

func (ps *PongScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	overlay, err := ui.NewOverlay()
	if err != nil {
		log.Printf("Warning: Could not build overlay: %v", err)
	}
	ps.overlay = overlay

	court, err := assets.LoadCourt()
	if err != nil {
		log.Fatalf("Failed to load court: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	for _, system := range systems.Simulation {
		ecs.AddSystem(system)
	}
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawCourt)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreateCourt(ps.ecs, court, factory.CourtOptions{
		LeftCPU:  ps.options.LeftCPU,
		RightCPU: ps.options.RightCPU,
		Seed:     ps.options.Seed,
	})
	archetypes.Audio.Spawn(ps.ecs)

	systems.ApplySavedSettings(ps.ecs, ps.options.Settings)
	systems.RestoreScoreboard(ps.ecs)

	if ps.options.SkipWelcome {
		if err := systems.StartGame(ps.ecs); err != nil {
			log.Printf("Warning: could not start game: %v", err)
		}
	}
}

// reloadTuning applies a changed tuning file between frames.
func (ps *PongScene) reloadTuning() {
	if ps.options.Tuning == nil {
		return
	}
	select {
	case err, ok := <-ps.options.Tuning.Errors:
		if ok {
			log.Printf("Warning: tuning watcher: %v", err)
		}
	default:
	}
	for {
		name, ok := ps.options.Tuning.Poll()
		if !ok {
			return
		}
		if err := cfg.LoadTuning(name); err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			continue
		}
		log.Printf("Reloaded tuning from %s", name)
	}
}
