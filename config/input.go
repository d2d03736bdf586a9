package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeftBatUp
	ActionLeftBatDown
	ActionRightBatUp
	ActionRightBatDown
	ActionStart
	ActionExit
	ActionToggleDebug
	ActionToggleMute
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // Stick deflection below this is ignored
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.3,
		Bindings: map[ActionID]InputBinding{
			ActionLeftBatUp: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionLeftBatDown: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionRightBatUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
			},
			ActionRightBatDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
			},
			ActionStart: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionExit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
		},
	}
}
