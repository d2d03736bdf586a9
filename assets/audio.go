package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// ToneFor resolves a sound ID to its configured tone.
func ToneFor(id cfg.SoundID) (Tone, error) {
	tc, ok := cfg.Sound.Tones[id]
	if !ok {
		return Tone{}, fmt.Errorf("no tone configured for sound %d", id)
	}
	vol := 1.0
	if m, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol = m
	}
	return Tone{
		Frequency: tc.Frequency,
		Duration:  tc.Duration,
		Attack:    tc.Attack,
		Release:   tc.Release,
		Square:    tc.Square,
		Volume:    vol * 0.5,
	}, nil
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, err := ToneFor(id)
	if err != nil {
		return err
	}
	l.sfxCache[id] = Synthesize(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}
