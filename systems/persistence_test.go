package systems

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestScoreboardEncoding(t *testing.T) {
	sb := &components.ScoreboardData{LeftWins: 4, RightWins: 2, LongestRally: 17, Dirty: true}

	data, err := encodeScoreboard(sb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"leftWins":4,"rightWins":2,"longestRally":17}`, string(data))

	saved, err := decodeScoreboard(data)
	require.NoError(t, err)

	var restored components.ScoreboardData
	saved.Apply(&restored)
	assert.Equal(t, components.ScoreboardData{LeftWins: 4, RightWins: 2, LongestRally: 17}, restored)
}

func TestDecodeScoreboardRejectsGarbage(t *testing.T) {
	_, err := decodeScoreboard([]byte("{"))
	assert.Error(t, err)
}

func TestPersistenceWithoutStorage(t *testing.T) {
	// gdata is never opened in tests
	assert.Equal(t, SavedScoreboard{}, LoadScoreboard())

	settings, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, settings)

	sb := &components.ScoreboardData{LeftWins: 1, Dirty: true}
	assert.NotPanics(t, func() { SaveScoreboard(sb) })
	assert.True(t, sb.Dirty, "nothing was written")

	assert.ErrorIs(t, SaveSettings(&SavedSettings{SFXVolume: 0.5}), errPersistenceOff)
}

func TestApplySavedSettings(t *testing.T) {
	prevDifficulty := cfg.Bot.Difficulty
	t.Cleanup(func() {
		cfg.Bot.Difficulty = prevDifficulty
		SetMuted(false)
		SetSFXVolume(cfg.Audio.DefaultSFXVol)
	})

	e := ecs.NewECS(donburi.NewWorld())
	ApplySavedSettings(e, &SavedSettings{SFXVolume: 0.25, Muted: true, Difficulty: "hard"})

	s := GetOrCreateSettings(e)
	assert.True(t, s.Muted)
	assert.Equal(t, 0.25, s.SFXVolume)
	assert.Equal(t, int(cfg.BotDifficultyHard), s.Difficulty)
	assert.Equal(t, cfg.BotDifficultyHard, cfg.Bot.Difficulty)
	assert.True(t, globalMuted)
}

func TestApplyNilSettingsKeepsDefaults(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	ApplySavedSettings(e, nil)

	s := GetOrCreateSettings(e)
	assert.Equal(t, cfg.Audio.DefaultSFXVol, s.SFXVolume)
	assert.False(t, s.Muted)
}
