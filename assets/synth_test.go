package assets

import (
	"testing"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLength(t *testing.T) {
	pcm := Synthesize(Tone{
		Frequency: 440,
		Duration:  100 * time.Millisecond,
		Attack:    5 * time.Millisecond,
		Release:   20 * time.Millisecond,
		Volume:    0.5,
	}, 44100)

	// 4410 stereo frames of two 16-bit samples
	assert.Len(t, pcm, 4410*4)
}

func TestSynthesizeEnvelopeStartsAndEndsQuiet(t *testing.T) {
	pcm := Synthesize(Tone{
		Frequency: 459,
		Duration:  40 * time.Millisecond,
		Attack:    2 * time.Millisecond,
		Release:   10 * time.Millisecond,
		Square:    true,
		Volume:    1,
	}, 44100)
	require.NotEmpty(t, pcm)

	sample := func(frame int) int16 {
		i := frame * 4
		return int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
	}
	frames := len(pcm) / 4

	assert.Equal(t, int16(0), sample(0))
	assert.InDelta(t, 0, sample(frames-1), 2000)

	peak := int16(0)
	for f := 0; f < frames; f++ {
		if s := sample(f); s > peak {
			peak = s
		}
	}
	assert.Greater(t, peak, int16(20000))
}

func TestSynthesizeSilent(t *testing.T) {
	pcm := Synthesize(Tone{Frequency: 440, Duration: 10 * time.Millisecond, Volume: 0}, 44100)
	for _, b := range pcm {
		require.Zero(t, b)
	}
}

func TestToneForConfiguredSounds(t *testing.T) {
	for _, id := range []cfg.SoundID{cfg.SoundBatHit, cfg.SoundWallBounce, cfg.SoundScore, cfg.SoundServe} {
		tone, err := ToneFor(id)
		require.NoError(t, err)
		assert.Positive(t, tone.Frequency)
	}

	_, err := ToneFor(cfg.SoundNone)
	assert.Error(t, err)
}
