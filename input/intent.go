package input

import "github.com/lixenwraith/snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Game flow
	IntentPause   // Enter
	IntentRestart // Space

	// System-level intents
	IntentToggleMute // Ctrl+S
	IntentQuit       // Esc, Ctrl+C, q
)

// String returns the action name used in key configuration
func (t IntentType) String() string {
	for name, it := range actionRegistry {
		if it == t {
			return name
		}
	}
	return "unknown"
}

// Direction returns the steering vector of a movement intent
func (t IntentType) Direction() (core.Direction, bool) {
	switch t {
	case IntentUp:
		return core.DirUp, true
	case IntentDown:
		return core.DirDown, true
	case IntentLeft:
		return core.DirLeft, true
	case IntentRight:
		return core.DirRight, true
	}
	return core.Stationary, false
}
