package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundPowerUp                   // Power-up collected
	SoundExpire                    // Effect ran out
	SoundGameOver                  // Fatal collision
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundPowerUp:
		return "powerup"
	case SoundExpire:
		return "expire"
	case SoundGameOver:
		return "gameover"
	}
	return "unknown"
}

// ErrInvalidSampleRate rejects speaker setups that cannot produce sound
var ErrInvalidSampleRate = errors.New("sample rate must be positive")
