package tags

import "github.com/yohamta/donburi"

var (
	Ball    = donburi.NewTag().SetName("Ball")
	Bat     = donburi.NewTag().SetName("Bat")
	Wall    = donburi.NewTag().SetName("Wall")
	EndZone = donburi.NewTag().SetName("EndZone")
)

// Resolv tags for broadphase queries
const (
	ResolvBall    = "ball"
	ResolvBat     = "bat"
	ResolvWall    = "wall"
	ResolvEndZone = "endzone"
)
