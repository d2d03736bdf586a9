package components

import (
	"errors"
	"fmt"
	"math/rand"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrInvalidTransition is returned when a match event arrives in a state
// that does not accept it.
var ErrInvalidTransition = errors.New("invalid match transition")

// MatchData stores the match state machine.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State         cfg.MatchStateID
	LeftPlayerWon bool // Valid only when State is MatchStateEnded
	Rallies       int  // Bat hits since the last serve
	Frames        int  // Frames since the last serve
	BallSpawn     dmath.Vec2
	Rand          *rand.Rand
}

var Match = donburi.NewComponentType[MatchData]()

// CanStart reports whether Start would be accepted.
func (m *MatchData) CanStart() bool {
	return m.State != cfg.MatchStateRunning
}

// Start moves Idle or Ended to Running.
func (m *MatchData) Start() error {
	if !m.CanStart() {
		return fmt.Errorf("start from %s: %w", m.State, ErrInvalidTransition)
	}
	m.State = cfg.MatchStateRunning
	m.LeftPlayerWon = false
	m.Rallies = 0
	m.Frames = 0
	return nil
}

// End moves Running to Ended and records the winner.
func (m *MatchData) End(leftPlayerWins bool) error {
	if m.State != cfg.MatchStateRunning {
		return fmt.Errorf("end from %s: %w", m.State, ErrInvalidTransition)
	}
	m.State = cfg.MatchStateEnded
	m.LeftPlayerWon = leftPlayerWins
	return nil
}

// ServeDiagonal picks one of the four serve directions uniformly.
func (m *MatchData) ServeDiagonal() int {
	if m.Rand == nil {
		m.Rand = rand.New(rand.NewSource(1))
	}
	return m.Rand.Intn(4)
}

// Winner returns a display name for the winning player.
func (m *MatchData) Winner() string {
	if m.LeftPlayerWon {
		return "Player one"
	}
	return "Player two"
}
