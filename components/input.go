package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// BatControlData binds a bat to a keyboard pair or to the CPU.
type BatControlData struct {
	Side gamemath.Side
	Up   cfg.ActionID
	Down cfg.ActionID
	CPU  bool

	// CPU state
	TargetY     float64
	ReactFrames int // Frames until the CPU re-reads the ball position
}

var BatControl = donburi.NewComponentType[BatControlData]()
