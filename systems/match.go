package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrNoMatch is returned when the world has no match singleton.
var ErrNoMatch = errors.New("no match in world")

// UpdateMatch counts frames of the current rally and serves when Start is
// pressed while no game is running.
func UpdateMatch(e *ecs.ECS) {
	match, ok := getMatch(e)
	if !ok {
		return
	}

	if match.State == cfg.MatchStateRunning {
		match.Frames++
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionStart).JustPressed && match.CanStart() {
		if err := StartGame(e); err != nil {
			log.Printf("Warning: could not start game: %v", err)
		}
	}
}

// StartGame serves a new ball from the spawn point along a random diagonal.
// It fails with components.ErrInvalidTransition while a game is running and
// then changes nothing.
func StartGame(e *ecs.ECS) error {
	match, ok := getMatch(e)
	if !ok {
		return fmt.Errorf("start game: %w", ErrNoMatch)
	}
	if err := match.Start(); err != nil {
		return err
	}

	if entry, ok := tags.Ball.First(e.World); ok {
		ball := components.Body.Get(entry)
		ball.Position = match.BallSpawn
		ball.Velocity = gamemath.ServeVelocity(cfg.Ball.InitialSpeed, match.ServeDiagonal())
		ball.Disabled = false
	}

	getOrCreateContacts(e).Clear()
	hideBanner(e)
	queueSound(e, cfg.SoundServe)
	return nil
}

// EndGame stops the ball, records the winner and announces it. It fails
// with components.ErrInvalidTransition unless a game is running.
func EndGame(e *ecs.ECS, leftPlayerWins bool) error {
	match, ok := getMatch(e)
	if !ok {
		return fmt.Errorf("end game: %w", ErrNoMatch)
	}
	if err := match.End(leftPlayerWins); err != nil {
		return err
	}

	if entry, ok := tags.Ball.First(e.World); ok {
		ball := components.Body.Get(entry)
		ball.Disabled = true
		ball.Velocity = dmath.Vec2{}
	}

	scoreboard := getOrCreateScoreboard(e)
	scoreboard.Record(leftPlayerWins, match.Rallies)
	SaveScoreboard(scoreboard)

	showBanner(e, match.Winner()+" wins!")
	startShake(e)
	queueSound(e, cfg.SoundScore)
	return nil
}

// IsMatchPlaying returns true if a ball is in play.
func IsMatchPlaying(e *ecs.ECS) bool {
	match, ok := getMatch(e)
	return ok && match.State == cfg.MatchStateRunning
}

// MatchSnapshot returns a copy of the match state.
func MatchSnapshot(e *ecs.ECS) (components.MatchData, bool) {
	match, ok := getMatch(e)
	if !ok {
		return components.MatchData{}, false
	}
	return *match, true
}

func getMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}
