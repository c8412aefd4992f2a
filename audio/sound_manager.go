package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake/constants"
)

// SoundManager plays one-shot effects through the speaker and a shared mixer
// Every method is safe to call before Initialize or after a failed one
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool // speaker opened, beep allows this once per process
	active      bool // mixer unpaused and accepting effects

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a sound manager with the default config
func NewSoundManager() *SoundManager {
	return &SoundManager{
		config: DefaultAudioConfig(),
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the speaker, a disabled config initializes nothing and returns nil
func (sm *SoundManager) Initialize(cfg *AudioConfig) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.active {
		return nil
	}
	if cfg != nil {
		sm.config = cfg
	}
	if !sm.config.Enabled {
		return nil
	}

	// Resume the device left open by Cleanup
	if sm.initialized {
		speaker.Lock()
		sm.ctrl.Paused = false
		speaker.Unlock()
		sm.active = true
		return nil
	}

	if sm.config.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.ctrl = &beep.Ctrl{Streamer: sm.mixer}
	speaker.Play(sm.ctrl)
	sm.initialized = true
	sm.active = true
	return nil
}

// Play queues a one-shot effect, no-op when uninitialized or muted
func (sm *SoundManager) Play(s SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active {
		return
	}

	streamer := GetSoundEffect(s, sm.config)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Initialized reports whether the speaker is running and accepting effects
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.active
}

// Played returns the number of effects handed to the mixer
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// Cleanup stops all sounds and silences the mixer
// The device stays open since speaker.Init cannot run a second time, Initialize resumes it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()
	sm.active = false
}
