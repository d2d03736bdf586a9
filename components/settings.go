package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles that survive a restart.
type SettingsData struct {
	Muted         bool
	ShowColliders bool
	SFXVolume     float64
	Difficulty    int
}

var Settings = donburi.NewComponentType[SettingsData]()

// ScoreboardData is the running win tally.
type ScoreboardData struct {
	LeftWins     int
	RightWins    int
	LongestRally int
	Dirty        bool // Needs saving
}

var Scoreboard = donburi.NewComponentType[ScoreboardData]()

// Record adds one win and tracks the longest rally.
func (s *ScoreboardData) Record(leftPlayerWins bool, rallies int) {
	if leftPlayerWins {
		s.LeftWins++
	} else {
		s.RightWins++
	}
	if rallies > s.LongestRally {
		s.LongestRally = rallies
	}
	s.Dirty = true
}
