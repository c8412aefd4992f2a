package input

import "slices"

// actionRegistry maps canonical action names to intents
// Used by the key binding loader to resolve TOML action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"up":    IntentUp,
	"down":  IntentDown,
	"left":  IntentLeft,
	"right": IntentRight,

	"pause":   IntentPause,
	"restart": IntentRestart,

	"toggle_mute": IntentToggleMute,
	"quit":        IntentQuit,
}

// ActionIntent returns the intent registered under name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
