package systems

import "github.com/yohamta/donburi/ecs"

// Simulation is the fixed-order per-frame pipeline. Input polling, settings,
// audio and rendering are added around it by the scene.
var Simulation = []ecs.System{
	UpdateMatch,
	UpdateBats,
	UpdatePhysics,
	UpdateObjects,
	UpdateCollisions,
	UpdateBanner,
	UpdateEffects,
}

// Step runs one frame of Simulation.
func Step(e *ecs.ECS) {
	for _, system := range Simulation {
		system(e)
	}
}
