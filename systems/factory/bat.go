package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateBat spawns a bat for side. Player one (left) uses W/S, player two
// (right) the arrow keys; cpu hands the bat to the AI instead.
func CreateBat(ecs *ecs.ECS, side gamemath.Side, pos dmath.Vec2, w, h float64, cpu bool) *donburi.Entry {
	bat := archetypes.Bat.Spawn(ecs)
	attachBody(ecs, bat, gamemath.Body{
		Kind:     gamemath.KindBat,
		Side:     side,
		Shape:    gamemath.Box(w, h),
		Position: pos,
	}, false, tags.ResolvBat)

	ctrl := components.BatControlData{
		Side: side,
		Up:   cfg.ActionLeftBatUp,
		Down: cfg.ActionLeftBatDown,
		CPU:  cpu,
	}
	if side == gamemath.SideRight {
		ctrl.Up = cfg.ActionRightBatUp
		ctrl.Down = cfg.ActionRightBatDown
	}
	components.BatControl.SetValue(bat, ctrl)

	return bat
}
