package gamemath

// OutcomeKind is the collision response chosen for the ball.
type OutcomeKind int

const (
	OutcomeNoOp OutcomeKind = iota
	OutcomeReflectHorizontal
	OutcomeReflectVertical
	OutcomeEndGame
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeReflectHorizontal:
		return "ReflectHorizontal"
	case OutcomeReflectVertical:
		return "ReflectVertical"
	case OutcomeEndGame:
		return "EndGame"
	default:
		return "NoOp"
	}
}

// Outcome is the result of Classify. LeftPlayerWins is only meaningful for
// OutcomeEndGame.
type Outcome struct {
	Kind           OutcomeKind
	LeftPlayerWins bool
}

var (
	NoOp              = Outcome{Kind: OutcomeNoOp}
	ReflectHorizontal = Outcome{Kind: OutcomeReflectHorizontal}
	ReflectVertical   = Outcome{Kind: OutcomeReflectVertical}
)

// EndGame returns the end-of-match outcome for the given winner.
func EndGame(leftPlayerWins bool) Outcome {
	return Outcome{Kind: OutcomeEndGame, LeftPlayerWins: leftPlayerWins}
}

// Classify decides how self responds to touching other. Precedence is
// end zone, then bat, then wall; anything else is a no-op. A ball reaching an
// end zone is won by the player who does not own it.
func Classify(self, other Body) Outcome {
	if !self.Valid() || !other.Valid() {
		return NoOp
	}

	switch other.Kind {
	case KindEndZone:
		return EndGame(other.Side == SideRight)
	case KindBat:
		return ReflectHorizontal
	case KindWall:
		return ReflectVertical
	case KindBall, KindNone:
		return NoOp
	}
	return NoOp
}
