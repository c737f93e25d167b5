package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue envelope timings
const (
	landDuration  = 60 * time.Millisecond
	stompDuration = 140 * time.Millisecond
	hurtDuration  = 220 * time.Millisecond
	jumpDuration  = 90 * time.Millisecond
	cueAttack     = 5 * time.Millisecond
	cueRelease    = 40 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave of fixed length
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at linear volume vol, 0 or less is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueStreamer builds the finite streamer for c at linear volume vol
func CueStreamer(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueLand:
		// Low thud, a plain sine cut short
		tone, err := generators.SineTone(rate, 110)
		if err != nil {
			return nil
		}
		s = NewEnvelope(beep.Take(rate.N(landDuration), tone), landDuration, cueAttack, cueRelease, rate)
	case CueStomp:
		s = beep.Seq(
			NewEnvelope(NewOscillator(330, stompDuration/2, WaveSquare, rate), stompDuration/2, cueAttack, cueRelease/2, rate),
			NewEnvelope(NewOscillator(660, stompDuration/2, WaveSquare, rate), stompDuration/2, cueAttack, cueRelease, rate),
		)
	case CueHurt:
		s = beep.Mix(
			newVolume(NewEnvelope(NewOscillator(90, hurtDuration, WaveSaw, rate), hurtDuration, cueAttack, cueRelease, rate), 0.7),
			newVolume(NewEnvelope(NewOscillator(0, hurtDuration, WaveNoise, rate), hurtDuration, cueAttack, cueRelease, rate), 0.3),
		)
	case CueJump:
		s = NewEnvelope(NewOscillator(440, jumpDuration, WaveSine, rate), jumpDuration, cueAttack, cueRelease, rate)
	default:
		return nil
	}
	return newVolume(s, vol)
}
