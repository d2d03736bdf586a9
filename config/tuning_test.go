package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTuning(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)
}

func TestParseTuningOverridesOnlyPresentKeys(t *testing.T) {
	restoreTuning(t)

	tuning, err := ParseTuning([]byte("ball:\n  initial_speed: 6\nbot:\n  difficulty: hard\n"))
	require.NoError(t, err)

	assert.Equal(t, 6.0, tuning.Ball.InitialSpeed)
	assert.Equal(t, Ball.BatSpeedUp, tuning.Ball.BatSpeedUp)
	assert.Equal(t, Bat.Speed, tuning.Bat.Speed)
	assert.Equal(t, Collision.Epsilon, tuning.Collision.Epsilon)
	assert.Equal(t, "hard", tuning.Bot.Difficulty)
	assert.Equal(t, Bot.Difficulties[BotDifficultyEasy], tuning.Bot.Easy)
}

func TestParseTuningRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero ball speed", "ball:\n  initial_speed: 0\n"},
		{"negative bat speed", "bat:\n  speed: -1\n"},
		{"negative epsilon", "collision:\n  epsilon: -0.1\n"},
		{"zero cell size", "collision:\n  cell_size: 0\n"},
		{"unknown difficulty", "bot:\n  difficulty: nightmare\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidTuning)
		})
	}
}

func TestParseTuningRejectsMalformedYAML(t *testing.T) {
	_, err := ParseTuning([]byte("ball: [1, 2"))
	assert.Error(t, err)
}

func TestLoadTuningAppliesFile(t *testing.T) {
	restoreTuning(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bat:\n  speed: 5.5\nbot:\n  difficulty: easy\n  easy:\n    dead_zone: 0.4\n"), 0o644))

	require.NoError(t, LoadTuning(path))
	assert.Equal(t, 5.5, Bat.Speed)
	assert.Equal(t, BotDifficultyEasy, Bot.Difficulty)
	assert.Equal(t, 0.4, Bot.Current().DeadZone)
	// untouched fields of the overridden difficulty survive
	assert.Equal(t, 20, Bot.Current().ReactionDelay)
}

func TestLoadTuningMissingFile(t *testing.T) {
	restoreTuning(t)
	before := CurrentTuning()

	err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Equal(t, before, CurrentTuning())
}
