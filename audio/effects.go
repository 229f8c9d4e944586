package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-tunnel/parameter"
	"github.com/lixenwraith/vi-tunnel/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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

		freq := vmath.Lerp(o.freq, o.endFreq, float64(o.position)/float64(o.duration))

		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain vol
// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound generates a falling chirp for a fired projectile
func CreateShotSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.ShotSoundStartFreq, parameter.ShotSoundEndFreq, parameter.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
	return newVolume(shaped, parameter.ShotSoundVolume*parameter.AudioMasterVolume)
}

// CreateBoxHitSound generates a bell for a box strike
func CreateBoxHitSound(rate beep.SampleRate) beep.Streamer {
	fund := NewOscillator(parameter.BoxHitFundFreq, parameter.BoxHitSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.BoxHitSoundDuration, parameter.BoxHitSoundAttack, parameter.BoxHitFundRelease, rate)

	// Octave overtone
	over := NewOscillator(parameter.BoxHitFundFreq*2, parameter.BoxHitSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.BoxHitSoundDuration, parameter.BoxHitSoundAttack, parameter.BoxHitOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, parameter.BoxHitVolume*parameter.AudioMasterVolume)
}

// CreateWallHitSound generates a dull thud for a tube strike
func CreateWallHitSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.WallHitSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.WallHitSoundDuration, parameter.WallHitSoundAttack, parameter.WallHitSoundRelease, rate)

	rumble := NewOscillator(parameter.WallHitRumbleFreq, parameter.WallHitSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, parameter.WallHitSoundDuration, parameter.WallHitSoundAttack, parameter.WallHitSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.3),
		newVolume(rumbleShaped, 0.7),
	)
	return newVolume(mixed, parameter.WallHitVolume*parameter.AudioMasterVolume)
}

// GetSoundEffect returns a fresh streamer for the sound type, nil when unknown
func GetSoundEffect(soundType SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(rate)
	case SoundBoxHit:
		return CreateBoxHitSound(rate)
	case SoundWallHit:
		return CreateWallHitSound(rate)
	default:
		return nil
	}
}
