package systems

import (
	"math"
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestNewCourtIsIdleWithBallParked(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{Seed: 1})

	assert.Equal(t, cfg.MatchStateIdle, match(t, e).State)
	b := ball(t, e)
	assert.True(t, b.Disabled)
	assert.InDelta(t, 0, b.Position.X, 1e-9)
	assert.InDelta(t, 0, b.Position.Y, 1e-9)
	assert.InDelta(t, 0.16, b.Shape.Radius, 1e-9)

	// a parked ball never moves
	for i := 0; i < 30; i++ {
		Step(e)
	}
	assert.Equal(t, dmath.Vec2{}, ball(t, e).Position)
}

func TestStartGameServesAlongADiagonal(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := newTestWorld(t, factory.CourtOptions{Seed: seed})
		require.NoError(t, StartGame(e))

		m := match(t, e)
		assert.Equal(t, cfg.MatchStateRunning, m.State)

		b := ball(t, e)
		assert.False(t, b.Disabled)
		assert.Equal(t, m.BallSpawn, b.Position)
		assert.InDelta(t, cfg.Ball.InitialSpeed, gamemath.Speed(b.Velocity), 1e-9)
		assert.InDelta(t, math.Abs(b.Velocity.X), math.Abs(b.Velocity.Y), 1e-9)
		assert.Contains(t, pendingSounds(t, e), cfg.SoundServe)
	}
}

func TestStartGameTwiceIsRejected(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{Seed: 3})
	require.NoError(t, StartGame(e))
	for i := 0; i < 10; i++ {
		Step(e)
	}

	before := *ball(t, e)
	err := StartGame(e)

	assert.ErrorIs(t, err, components.ErrInvalidTransition)
	assert.Equal(t, cfg.MatchStateRunning, match(t, e).State)
	assert.Equal(t, before, *ball(t, e))
}

func TestEndGameOutsideRunningIsRejected(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{})

	assert.ErrorIs(t, EndGame(e, true), components.ErrInvalidTransition)
	assert.Equal(t, cfg.MatchStateIdle, match(t, e).State)
	assert.Zero(t, getOrCreateScoreboard(e).LeftWins)

	require.NoError(t, StartGame(e))
	require.NoError(t, EndGame(e, false))
	assert.ErrorIs(t, EndGame(e, true), components.ErrInvalidTransition)
	assert.False(t, match(t, e).LeftPlayerWon)
	assert.Equal(t, 1, getOrCreateScoreboard(e).RightWins)
}

func TestRestartAfterEnd(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{Seed: 9})
	require.NoError(t, StartGame(e))
	require.NoError(t, EndGame(e, true))
	assert.True(t, ball(t, e).Disabled)

	require.NoError(t, StartGame(e))
	assert.Equal(t, cfg.MatchStateRunning, match(t, e).State)
	assert.False(t, ball(t, e).Disabled)

	banner, ok := getBanner(e)
	require.True(t, ok)
	assert.False(t, banner.Visible)
}

func TestStartActionServesOnlyWhenNotRunning(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{Seed: 5})
	input := getOrCreateInput(e)

	press := func() {
		input.Previous = input.Current
		input.Current[cfg.ActionStart] = true
		Step(e)
		input.Previous = input.Current
		input.Current[cfg.ActionStart] = false
	}

	press()
	require.Equal(t, cfg.MatchStateRunning, match(t, e).State)
	served := ball(t, e).Velocity

	Step(e)
	press()
	assert.Equal(t, cfg.MatchStateRunning, match(t, e).State)
	// still the first serve, never re-served
	assert.Equal(t, served.X > 0, ball(t, e).Velocity.X > 0)
	assert.Greater(t, match(t, e).Frames, 1)
}

func TestMatchWithoutSingleton(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.ErrorIs(t, StartGame(e), ErrNoMatch)
	assert.ErrorIs(t, EndGame(e, true), ErrNoMatch)
	assert.False(t, IsMatchPlaying(e))
	assert.NotPanics(t, func() { Step(e) })
}

func TestWinnerBannerGrowsIn(t *testing.T) {
	e := newTestWorld(t, factory.CourtOptions{})
	require.NoError(t, StartGame(e))
	require.NoError(t, EndGame(e, true))

	banner, ok := getBanner(e)
	require.True(t, ok)
	assert.True(t, banner.Visible)
	assert.Equal(t, "Player one wins!", banner.Text)
	assert.Zero(t, banner.Scale)

	frames := int(cfg.Match.BannerDuration*float64(cfg.C.TPS)) + 5
	for i := 0; i < frames; i++ {
		Step(e)
	}
	assert.InDelta(t, cfg.Match.BannerScale, banner.Scale, 1e-3)
}
