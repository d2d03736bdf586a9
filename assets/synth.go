package assets

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator generates a fixed-length sine or square wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	square   bool
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, square bool, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		square:   square,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		if o.square {
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		} else {
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly; zero or less is silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone describes one synthesized blip.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Square    bool
	Volume    float64
}

// Synthesize renders a tone as 16-bit signed little-endian stereo PCM, the
// format ebiten's audio players read.
func Synthesize(t Tone, sampleRate int) []byte {
	rate := beep.SampleRate(sampleRate)
	s := withVolume(
		newEnvelope(newOscillator(t.Frequency, t.Duration, t.Square, rate), t.Duration, t.Attack, t.Release, rate),
		t.Volume,
	)

	out := make([]byte, 0, rate.N(t.Duration)*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				sample := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}
