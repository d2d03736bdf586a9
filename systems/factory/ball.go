package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateBall spawns the ball at rest and disabled; StartGame serves it.
func CreateBall(ecs *ecs.ECS, pos dmath.Vec2, radius float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)
	attachBody(ecs, ball, gamemath.Body{
		Kind:     gamemath.KindBall,
		Shape:    gamemath.Circle(radius),
		Position: pos,
	}, true, tags.ResolvBall)
	return ball
}
