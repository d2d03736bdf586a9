package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBatHit
	SoundWallBounce
	SoundScore
	SoundServe
)

// ToneConfig describes one synthesized blip
type ToneConfig struct {
	Frequency float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Square    bool
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones             map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	// Frequencies follow the arcade cabinet: bat 459 Hz, wall 226 Hz, score 490 Hz.
	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundBatHit:     {Frequency: 459, Duration: 40 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 10 * time.Millisecond, Square: true},
			SoundWallBounce: {Frequency: 226, Duration: 30 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 10 * time.Millisecond, Square: true},
			SoundScore:      {Frequency: 490, Duration: 260 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond, Square: true},
			SoundServe:      {Frequency: 880, Duration: 60 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 30 * time.Millisecond},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundScore: 1.2,
		},
	}
}
