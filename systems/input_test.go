package systems

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       ActionState
	}{
		{"idle", false, false, ActionState{}},
		{"pressed this frame", false, true, ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, ActionState{Pressed: true}},
		{"released this frame", true, false, ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Previous[cfg.ActionStart] = tt.prev
			input.Current[cfg.ActionStart] = tt.curr
			assert.Equal(t, tt.want, GetAction(&input, cfg.ActionStart))
		})
	}
}

func TestExitRequested(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.False(t, ExitRequested(e))

	input := getOrCreateInput(e)
	input.Current[cfg.ActionExit] = true
	assert.True(t, ExitRequested(e))

	input.Previous = input.Current
	assert.False(t, ExitRequested(e), "holding Esc only counts once")
}

func TestToggleSettings(t *testing.T) {
	t.Cleanup(func() { SetMuted(false) })

	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	before := settings.ShowColliders

	input.Current[cfg.ActionToggleDebug] = true
	input.Current[cfg.ActionToggleMute] = true
	UpdateSettings(e)

	assert.Equal(t, !before, settings.ShowColliders)
	assert.True(t, settings.Muted)
	assert.True(t, globalMuted)

	// still held next frame: no second toggle
	input.Previous = input.Current
	UpdateSettings(e)
	assert.True(t, settings.Muted)
}
