package parameter

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect, 1.0 is unity gain
	AudioMasterVolume = 0.6
)

// Shot sound: short descending square chirp
const (
	ShotSoundDuration  = 90 * time.Millisecond
	ShotSoundAttack    = 2 * time.Millisecond
	ShotSoundRelease   = 60 * time.Millisecond
	ShotSoundStartFreq = 1400.0 // Hz
	ShotSoundEndFreq   = 500.0  // Hz
	ShotSoundVolume    = 0.25
)

// Box impact: bell with an octave overtone
const (
	BoxHitSoundDuration   = 450 * time.Millisecond
	BoxHitSoundAttack     = 3 * time.Millisecond
	BoxHitFundRelease     = 400 * time.Millisecond
	BoxHitOvertoneRelease = 150 * time.Millisecond
	BoxHitFundFreq        = 660.0 // Hz
	BoxHitVolume          = 0.5
)

// Wall impact: low noise thud
const (
	WallHitSoundDuration = 160 * time.Millisecond
	WallHitSoundAttack   = 2 * time.Millisecond
	WallHitSoundRelease  = 140 * time.Millisecond
	WallHitRumbleFreq    = 70.0 // Hz
	WallHitVolume        = 0.35
)
