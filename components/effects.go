package components

import "github.com/yohamta/donburi"

// FlashData tracks a bat or wall flash after a hit
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()

// ScreenShakeData tracks a short court shake after a point is scored
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
