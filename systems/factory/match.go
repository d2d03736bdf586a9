package factory

import (
	"math/rand"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateMatch spawns the match singleton in the Idle state. seed drives the
// serve direction.
func CreateMatch(ecs *ecs.ECS, ballSpawn dmath.Vec2, seed int64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State:     cfg.MatchStateIdle,
		BallSpawn: ballSpawn,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	return match
}
