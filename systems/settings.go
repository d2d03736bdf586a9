package systems

import (
	"log"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug and mute toggles and saves them.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowColliders = !settings.ShowColliders
		changed = true
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// SaveCurrentSettings saves the settings component to disk
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		SFXVolume:     s.SFXVolume,
		Muted:         s.Muted,
		ShowColliders: s.ShowColliders,
		Difficulty:    cfg.BotDifficulty(s.Difficulty).String(),
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings copies loaded settings into the world and the global
// audio and bot state. A nil saved value leaves the defaults.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	settings := GetOrCreateSettings(e)
	if saved == nil {
		return
	}

	settings.SFXVolume = saved.SFXVolume
	settings.Muted = saved.Muted
	settings.ShowColliders = saved.ShowColliders || cfg.Debug.ShowColliders

	if d, err := cfg.ParseBotDifficulty(saved.Difficulty); err == nil {
		settings.Difficulty = int(d)
		cfg.Bot.Difficulty = d
	} else {
		log.Printf("Warning: ignoring saved difficulty: %v", err)
	}

	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)
}

// GetOrCreateSettings returns the singleton settings component
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		settings := components.Settings.Get(entry)
		settings.SFXVolume = cfg.Audio.DefaultSFXVol
		settings.ShowColliders = cfg.Debug.ShowColliders
		settings.Difficulty = int(cfg.Bot.Difficulty)
	}
	return components.Settings.Get(entry)
}

func getOrCreateScoreboard(e *ecs.ECS) *components.ScoreboardData {
	entry, ok := components.Scoreboard.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Scoreboard))
	}
	return components.Scoreboard.Get(entry)
}
