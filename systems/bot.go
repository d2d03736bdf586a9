package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
)

// cpuVelocity steers a CPU bat towards the ball while the ball is heading
// its way, and back to the centre line otherwise. The target is re-read only
// every ReactionDelay frames.
func cpuVelocity(ctrl *components.BatControlData, bat, ball *components.BodyData) float64 {
	tuning := cfg.Bot.Current()

	ctrl.ReactFrames--
	if ctrl.ReactFrames <= 0 {
		ctrl.ReactFrames = tuning.ReactionDelay
		ctrl.TargetY = 0
		if ball != nil && !ball.Disabled && approaching(ctrl.Side, ball) {
			ctrl.TargetY = ball.Position.Y
		}
	}

	return gamemath.ApproachAxis(bat.Position.Y, ctrl.TargetY, tuning.DeadZone, cfg.Bat.Speed*tuning.SpeedScale)
}

func approaching(side gamemath.Side, ball *components.BodyData) bool {
	switch side {
	case gamemath.SideLeft:
		return ball.Velocity.X < 0
	case gamemath.SideRight:
		return ball.Velocity.X > 0
	}
	return false
}
