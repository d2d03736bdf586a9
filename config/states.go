package config

// MatchStateID is the state of the match state machine.
type MatchStateID int

const (
	MatchStateIdle MatchStateID = iota
	MatchStateRunning
	MatchStateEnded
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStateIdle:
		return "idle"
	case MatchStateRunning:
		return "running"
	case MatchStateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
