package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each resolv object onto its body's screen rectangle
// and refreshes its broadphase cells.
func UpdateObjects(ecs *ecs.ECS) {
	proj := cfg.Projection()
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		syncObject(e, proj)
	})
}

func syncObject(e *donburi.Entry, proj gamemath.Projection) {
	obj := components.Object.Get(e)
	if e.HasComponent(components.Body) {
		body := components.Body.Get(e)
		obj.X, obj.Y, _, _ = proj.BoundsToScreen(body.Body)
	}
	obj.Update()
}
