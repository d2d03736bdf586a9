package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances every enabled body by one fixed tick at constant
// velocity. There is no gravity, friction or response here; contacts are
// resolved by UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.TickSeconds()
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Disabled {
			return
		}
		body.Position = gamemath.Integrate(body.Position, body.Velocity, dt)
	})
}
