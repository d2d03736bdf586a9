package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBats turns held keys, or the CPU, into bat velocities. Bats move only
// along y. Up wins when both keys are held; neither held stops the bat.
func UpdateBats(e *ecs.ECS) {
	input := getOrCreateInput(e)
	ball := ballBody(e)

	tags.Bat.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		ctrl := components.BatControl.Get(entry)

		body.Velocity.X = 0
		if ctrl.CPU {
			body.Velocity.Y = cpuVelocity(ctrl, body, ball)
			return
		}

		switch {
		case input.Current[ctrl.Up]:
			body.Velocity.Y = cfg.Bat.Speed
		case input.Current[ctrl.Down]:
			body.Velocity.Y = -cfg.Bat.Speed
		default:
			body.Velocity.Y = 0
		}
	})
}

// ballBody returns the ball's body, or nil if there is no ball.
func ballBody(e *ecs.ECS) *components.BodyData {
	entry, ok := tags.Ball.First(e.World)
	if !ok {
		return nil
	}
	return components.Body.Get(entry)
}
