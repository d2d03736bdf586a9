package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file holds out of range values.
var ErrInvalidTuning = errors.New("invalid tuning")

// BotTuning is the YAML shape of the bat AI settings.
type BotTuning struct {
	Difficulty string              `yaml:"difficulty"`
	Easy       BotDifficultyConfig `yaml:"easy"`
	Normal     BotDifficultyConfig `yaml:"normal"`
	Hard       BotDifficultyConfig `yaml:"hard"`
}

// Tuning is the overridable subset of the game configuration.
//
//	ball:
//	  initial_speed: 5
//	bat:
//	  speed: 4.5
//	bot:
//	  difficulty: hard
type Tuning struct {
	Ball      BallConfig      `yaml:"ball"`
	Bat       BatConfig       `yaml:"bat"`
	Collision CollisionConfig `yaml:"collision"`
	Bot       BotTuning       `yaml:"bot"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Ball:      Ball,
		Bat:       Bat,
		Collision: Collision,
		Bot: BotTuning{
			Difficulty: Bot.Difficulty.String(),
			Easy:       Bot.Difficulties[BotDifficultyEasy],
			Normal:     Bot.Difficulties[BotDifficultyNormal],
			Hard:       Bot.Difficulties[BotDifficultyHard],
		},
	}
}

// ParseTuning decodes YAML on top of the live configuration, so keys missing
// from data keep their current values.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Ball.InitialSpeed <= 0:
		return fmt.Errorf("ball.initial_speed must be positive: %w", ErrInvalidTuning)
	case t.Ball.BatSpeedUp <= 0:
		return fmt.Errorf("ball.bat_speed_up must be positive: %w", ErrInvalidTuning)
	case t.Bat.Speed <= 0:
		return fmt.Errorf("bat.speed must be positive: %w", ErrInvalidTuning)
	case t.Collision.Epsilon < 0:
		return fmt.Errorf("collision.epsilon must not be negative: %w", ErrInvalidTuning)
	case t.Collision.CellSize <= 0:
		return fmt.Errorf("collision.cell_size must be positive: %w", ErrInvalidTuning)
	}
	if _, err := ParseBotDifficulty(t.Bot.Difficulty); err != nil {
		return err
	}
	return nil
}

// Apply writes t into the global configuration.
func (t Tuning) Apply() {
	Ball = t.Ball
	Bat = t.Bat
	Collision = t.Collision

	d, _ := ParseBotDifficulty(t.Bot.Difficulty)
	Bot.Difficulty = d
	Bot.Difficulties = map[BotDifficulty]BotDifficultyConfig{
		BotDifficultyEasy:   t.Bot.Easy,
		BotDifficultyNormal: t.Bot.Normal,
		BotDifficultyHard:   t.Bot.Hard,
	}
}

// LoadTuning reads, validates and applies a YAML tuning file.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	t.Apply()
	return nil
}
