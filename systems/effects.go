package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, screen shake)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScreenShake(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Elapsed < shake.Duration {
		shake.Elapsed++
	}
}

// startShake begins a court shake, unless a stronger one is already running.
func startShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Elapsed < shake.Duration && shake.Intensity > cfg.Match.ShakeIntensity {
		return
	}
	shake.Intensity = cfg.Match.ShakeIntensity
	shake.Duration = cfg.Match.ShakeFrames
	shake.Elapsed = 0
}

// ShakeOffset returns the current pixel offset of the court.
func ShakeOffset(ecs *ecs.ECS) (x, y float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 || shake.Elapsed >= shake.Duration {
		return 0, 0
	}

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	current := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	return math.Sin(float64(shake.Elapsed)*1.1) * current, math.Cos(float64(shake.Elapsed)*1.3) * current
}
