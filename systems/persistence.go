package systems

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/automoto/pong/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// Storage keys
const (
	settingsKey   = "settings"
	scoreboardKey = "scoreboard"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	Muted         bool    `json:"muted"`
	ShowColliders bool    `json:"showColliders"`
	Difficulty    string  `json:"difficulty"`
}

// SavedScoreboard represents the win tally stored on disk
type SavedScoreboard struct {
	LeftWins     int `json:"leftWins"`
	RightWins    int `json:"rightWins"`
	LongestRally int `json:"longestRally"`
}

// errPersistenceOff is returned by saves made before InitPersistence
// succeeded.
var errPersistenceOff = errors.New("persistence not initialized")

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pong",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string) []byte {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return nil
	}
	return data
}

func saveItem(key string, data []byte) error {
	if !gdataInitialized || gdataManager == nil {
		return errPersistenceOff
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	data := loadItem(settingsKey)
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	return saveItem(settingsKey, data)
}

// LoadScoreboard loads the win tally, or a zero tally if none was saved.
func LoadScoreboard() SavedScoreboard {
	data := loadItem(scoreboardKey)
	if len(data) == 0 {
		return SavedScoreboard{}
	}
	s, err := decodeScoreboard(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved scoreboard: %v", err)
		return SavedScoreboard{}
	}
	return s
}

// SaveScoreboard writes the tally if it changed since the last save. The
// tally stays dirty until a write succeeds.
func SaveScoreboard(s *components.ScoreboardData) {
	if !s.Dirty {
		return
	}
	data, err := encodeScoreboard(s)
	if err != nil {
		log.Printf("Warning: Could not serialize scoreboard: %v", err)
		return
	}
	if err := saveItem(scoreboardKey, data); err == nil {
		s.Dirty = false
	}
}

func encodeScoreboard(s *components.ScoreboardData) ([]byte, error) {
	return json.Marshal(SavedScoreboard{
		LeftWins:     s.LeftWins,
		RightWins:    s.RightWins,
		LongestRally: s.LongestRally,
	})
}

func decodeScoreboard(data []byte) (SavedScoreboard, error) {
	var s SavedScoreboard
	err := json.Unmarshal(data, &s)
	return s, err
}

// Apply copies a saved tally into the scoreboard component.
func (s SavedScoreboard) Apply(dst *components.ScoreboardData) {
	dst.LeftWins = s.LeftWins
	dst.RightWins = s.RightWins
	dst.LongestRally = s.LongestRally
	dst.Dirty = false
}

// RestoreScoreboard loads the saved tally into the world.
func RestoreScoreboard(e *ecs.ECS) {
	LoadScoreboard().Apply(getOrCreateScoreboard(e))
}

// CurrentScoreboard returns a copy of the world's tally.
func CurrentScoreboard(e *ecs.ECS) components.ScoreboardData {
	return *getOrCreateScoreboard(e)
}
