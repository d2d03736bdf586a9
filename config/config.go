package config

import (
	"image/color"

	"github.com/automoto/pong/shared/gamemath"
)

// BallConfig contains ball tuning values
type BallConfig struct {
	InitialSpeed float64 `yaml:"initial_speed"` // world units per second at serve
	BatSpeedUp   float64 `yaml:"bat_speed_up"`  // velocity multiplier on every bat hit
}

// BatConfig contains bat tuning values
type BatConfig struct {
	Speed float64 `yaml:"speed"` // world units per second while a key is held
}

// CollisionConfig contains collision tuning values
type CollisionConfig struct {
	Epsilon  float64 `yaml:"epsilon"`   // gap left between a corrected bat and the wall
	CellSize int     `yaml:"cell_size"` // resolv broadphase cell size in pixels
}

// MatchConfig contains match flow configuration
type MatchConfig struct {
	BannerDuration float64 // seconds for the winner banner to grow in
	BannerScale    float64 // final banner scale
	FlashFrames    int     // bat/wall highlight after a hit
	ShakeFrames    int
	ShakeIntensity float64 // pixels
}

// UIConfig contains presentation values
type UIConfig struct {
	BackgroundColor color.RGBA
	CourtColor      color.RGBA
	BallColor       color.RGBA
	BatColor        color.RGBA
	EndZoneColor    color.RGBA
	CentreLineColor color.RGBA
	OverlayColor    color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	BannerColor     color.RGBA

	// Font sizes
	TitleFontSize float64
	TextFontSize  float64
	HUDFontSize   float64

	// HUD layout
	ScoreY       float64
	ScoreOffsetX float64

	ScanlineIntensity float64 // 0 disables the darkening, 1 blacks out every other row

	// Debug colors
	DebugColliderColors map[gamemath.Kind]color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float64 // screen pixels per world unit
	TPS           int     // fixed simulation ticks per second
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipWelcome   bool // Start a match immediately
	ShowColliders bool // Draw resolv objects on top of the court
}

// Global configuration instances
var C *Config
var Ball BallConfig
var Bat BatConfig
var Collision CollisionConfig
var Match MatchConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	EndZoneTint  = color.RGBA{R: 255, G: 60, B: 60, A: 60}
)

// Projection returns the world to screen mapping for the current window.
func Projection() gamemath.Projection {
	return gamemath.Projection{
		PixelsPerUnit: C.PixelsPerUnit,
		Width:         float64(C.Width),
		Height:        float64(C.Height),
	}
}

// TickSeconds is the fixed simulation step.
func TickSeconds() float64 {
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:         1280,
		Height:        720,
		PixelsPerUnit: 100,
		TPS:           60,
	}

	Ball = BallConfig{
		InitialSpeed: 4.0,
		BatSpeedUp:   gamemath.DefaultSpeedUp,
	}

	Bat = BatConfig{
		Speed: 4.0,
	}

	Collision = CollisionConfig{
		Epsilon:  gamemath.DefaultEpsilon,
		CellSize: 16,
	}

	Match = MatchConfig{
		BannerDuration: 0.6,
		BannerScale:    1.0,
		FlashFrames:    6,
		ShakeFrames:    20,
		ShakeIntensity: 6,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 10, G: 12, B: 20, A: 255},
		CourtColor:      White,
		BallColor:       White,
		BatColor:        White,
		EndZoneColor:    EndZoneTint,
		CentreLineColor: DarkGrey,
		OverlayColor:    BlackOverlay,
		TitleColor:      BrightOrange,
		TextColor:       White,
		BannerColor:     BrightOrange,

		TitleFontSize: 60,
		TextFontSize:  20,
		HUDFontSize:   32,

		ScoreY:       110,
		ScoreOffsetX: 120,

		ScanlineIntensity: 0.18,

		DebugColliderColors: map[gamemath.Kind]color.RGBA{
			gamemath.KindBall:    Green,
			gamemath.KindBat:     Cyan,
			gamemath.KindWall:    Grey,
			gamemath.KindEndZone: Red,
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipWelcome:   false,
		ShowColliders: false,
	}
}
