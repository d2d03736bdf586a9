package systems

import (
	"testing"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/shared/leveldata"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// testCourt mirrors the embedded court: walls at y=±3, bats at x=±4,
// end zones at x=±4.46, a ball width beyond the bats.
func testCourt() *leveldata.CourtData {
	return &leveldata.CourtData{
		Walls: []leveldata.Rect{
			{X: 64, Y: 53, W: 1152, H: 14},
			{X: 64, Y: 653, W: 1152, H: 14},
		},
		Bats: map[string]leveldata.Rect{
			leveldata.SideLeft:  {X: 232, Y: 324, W: 16, H: 72},
			leveldata.SideRight: {X: 1032, Y: 324, W: 16, H: 72},
		},
		EndZones: map[string]leveldata.Rect{
			leveldata.SideLeft:  {X: 189, Y: 36, W: 10, H: 648},
			leveldata.SideRight: {X: 1081, Y: 36, W: 10, H: 648},
		},
		Ball:      leveldata.Rect{X: 624, Y: 344, W: 32, H: 32},
		MapWidth:  1280,
		MapHeight: 720,
	}
}

func newTestWorld(t *testing.T, opts factory.CourtOptions) *ecs.ECS {
	t.Helper()
	court := testCourt()
	require.NoError(t, court.Validate())

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCourt(e, court, opts)
	archetypes.Audio.Spawn(e)
	return e
}

func ballEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Ball.First(e.World)
	require.True(t, ok)
	return entry
}

func ball(t *testing.T, e *ecs.ECS) *components.BodyData {
	return components.Body.Get(ballEntry(t, e))
}

func bat(t *testing.T, e *ecs.ECS, side gamemath.Side) *components.BodyData {
	t.Helper()
	var found *components.BodyData
	tags.Bat.Each(e.World, func(entry *donburi.Entry) {
		if b := components.Body.Get(entry); b.Side == side {
			found = b
		}
	})
	require.NotNil(t, found)
	return found
}

func wall(t *testing.T, e *ecs.ECS, top bool) *components.BodyData {
	t.Helper()
	var found *components.BodyData
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		if b := components.Body.Get(entry); (b.Position.Y > 0) == top {
			found = b
		}
	})
	require.NotNil(t, found)
	return found
}

func match(t *testing.T, e *ecs.ECS) *components.MatchData {
	t.Helper()
	m, ok := getMatch(e)
	require.True(t, ok)
	return m
}

// placeBall starts a game and then puts the ball where the test wants it.
func placeBall(t *testing.T, e *ecs.ECS, pos, vel dmath.Vec2) *components.BodyData {
	t.Helper()
	require.NoError(t, StartGame(e))
	b := ball(t, e)
	b.Position = pos
	b.Velocity = vel
	return b
}

func pendingSounds(t *testing.T, e *ecs.ECS) []cfg.SoundID {
	t.Helper()
	entry, ok := components.Audio.First(e.World)
	require.True(t, ok)
	return components.Audio.Get(entry).PendingSFX
}
