package config

import "fmt"

// BotDifficulty affects how closely a CPU bat tracks the ball
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bat AI at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     `yaml:"reaction_delay"` // Frames between target updates
	DeadZone      float64 `yaml:"dead_zone"`      // World units around the target where the bat rests
	SpeedScale    float64 `yaml:"speed_scale"`    // Fraction of Bat.Speed the CPU may use
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulty   BotDifficulty                         `yaml:"-"`
	Difficulties map[BotDifficulty]BotDifficultyConfig `yaml:"difficulties"`
}

// Bot holds bat AI configuration
var Bot BotConfigData

// Current returns the tuning for the selected difficulty.
func (b BotConfigData) Current() BotDifficultyConfig {
	if d, ok := b.Difficulties[b.Difficulty]; ok {
		return d
	}
	return b.Difficulties[BotDifficultyNormal]
}

func init() {
	Bot = BotConfigData{
		Difficulty: BotDifficultyNormal,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 20, // ~0.33 second reaction time
				DeadZone:      0.3,
				SpeedScale:    0.7,
			},
			BotDifficultyNormal: {
				ReactionDelay: 10,
				DeadZone:      0.15,
				SpeedScale:    0.9,
			},
			BotDifficultyHard: {
				ReactionDelay: 3,
				DeadZone:      0.05,
				SpeedScale:    1.0,
			},
		},
	}
}

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseBotDifficulty maps "easy", "normal" or "hard" to a difficulty.
func ParseBotDifficulty(s string) (BotDifficulty, error) {
	switch s {
	case "easy":
		return BotDifficultyEasy, nil
	case "normal", "":
		return BotDifficultyNormal, nil
	case "hard":
		return BotDifficultyHard, nil
	}
	return BotDifficultyNormal, fmt.Errorf("unknown bot difficulty %q: %w", s, ErrInvalidTuning)
}
