package components

import (
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the authoritative world-space state of a court entity.
// A disabled body is neither integrated nor collided.
type BodyData struct {
	gamemath.Body
	Disabled bool
}

var Body = donburi.NewComponentType[BodyData]()
