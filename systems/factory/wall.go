package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateWall spawns a static wall box centred at pos, in world units.
func CreateWall(ecs *ecs.ECS, pos dmath.Vec2, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	attachBody(ecs, wall, gamemath.Body{
		Kind:     gamemath.KindWall,
		Shape:    gamemath.Box(w, h),
		Position: pos,
	}, false, tags.ResolvWall)
	return wall
}

// CreateEndZone spawns the scoring trigger behind a bat. A ball entering the
// left end zone wins the point for the right player and vice versa.
func CreateEndZone(ecs *ecs.ECS, side gamemath.Side, pos dmath.Vec2, w, h float64) *donburi.Entry {
	zone := archetypes.EndZone.Spawn(ecs)
	attachBody(ecs, zone, gamemath.Body{
		Kind:     gamemath.KindEndZone,
		Side:     side,
		Shape:    gamemath.Box(w, h),
		Position: pos,
	}, false, tags.ResolvEndZone)
	return zone
}
