package constants

import "time"

// Audio Defaults
const (
	// DefaultSampleRate is the speaker sample rate
	DefaultSampleRate = 44100

	// DefaultMasterVolume is the master volume in [0, 1]
	DefaultMasterVolume = 0.5

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundDuration = 180 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 150 * time.Millisecond
)

// Power-up Sound Timing
const (
	PowerUpSoundNote1Duration = 80 * time.Millisecond
	PowerUpSoundNote2Duration = 240 * time.Millisecond
	PowerUpSoundAttack        = 5 * time.Millisecond
	PowerUpSoundNote1Release  = 40 * time.Millisecond
	PowerUpSoundNote2Release  = 180 * time.Millisecond
)

// Expire Sound Timing
const (
	ExpireSoundDuration = 250 * time.Millisecond
	ExpireSoundAttack   = 120 * time.Millisecond
	ExpireSoundRelease  = 120 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 400 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
)
