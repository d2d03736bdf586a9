package systems

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCPUBatFollowsApproachingBall(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{LeftCPU: true})
	placeBall(t, e, dmath.Vec2{X: 0, Y: 1.5}, dmath.Vec2{X: -0.01, Y: 0})
	left := bat(t, e, gamemath.SideLeft)

	for i := 0; i < 120; i++ {
		Step(e)
	}

	tuning := cfg.Bot.Current()
	step := cfg.Bat.Speed * tuning.SpeedScale / float64(cfg.C.TPS)
	assert.InDelta(t, 1.5, left.Position.Y, tuning.DeadZone+step)
}

func TestCPUBatReturnsToCentreWhenBallLeaves(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{RightCPU: true})
	placeBall(t, e, dmath.Vec2{X: 0, Y: 2}, dmath.Vec2{X: -0.01, Y: 0})
	right := bat(t, e, gamemath.SideRight)
	right.Position.Y = -1.5

	for i := 0; i < 120; i++ {
		Step(e)
	}

	tuning := cfg.Bot.Current()
	assert.InDelta(t, 0, right.Position.Y, tuning.DeadZone+cfg.Bat.Speed/float64(cfg.C.TPS))
}

func TestCPUReactionDelay(t *testing.T) {
	ctrl := &components.BatControlData{Side: gamemath.SideLeft, CPU: true}
	batBody := &components.BodyData{}
	ballBody := &components.BodyData{Body: gamemath.Body{
		Kind:     gamemath.KindBall,
		Position: dmath.Vec2{Y: 2},
		Velocity: dmath.Vec2{X: -1},
	}}

	v := cpuVelocity(ctrl, batBody, ballBody)
	require.Positive(t, v)
	assert.Equal(t, 2.0, ctrl.TargetY)

	// the ball jumps but the CPU keeps its old target until the delay runs out
	ballBody.Position.Y = -2
	for i := 1; i < cfg.Bot.Current().ReactionDelay; i++ {
		assert.Positive(t, cpuVelocity(ctrl, batBody, ballBody))
	}
	assert.Negative(t, cpuVelocity(ctrl, batBody, ballBody))
}

func TestHumanBatIgnoresCPUState(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{})
	placeBall(t, e, dmath.Vec2{X: 0, Y: 2}, dmath.Vec2{X: -1, Y: 0})
	left := bat(t, e, gamemath.SideLeft)

	for i := 0; i < 20; i++ {
		Step(e)
	}
	assert.Zero(t, left.Position.Y)
}
