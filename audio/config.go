package audio

import "github.com/lixenwraith/snake/constants"

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the standard mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundEat:      0.6,
			SoundPowerUp:  0.4,
			SoundExpire:   0.3,
			SoundGameOver: 0.5,
		},
	}
}

// volume returns the effective gain of s
func (c *AudioConfig) volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
