package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEnter:  IntentPause,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},

		Runes: map[rune]IntentType{
			// vi motions
			'h': IntentLeft,
			'j': IntentDown,
			'k': IntentUp,
			'l': IntentRight,

			// WASD
			'w': IntentUp,
			'a': IntentLeft,
			's': IntentDown,
			'd': IntentRight,

			' ': IntentRestart,
			'q': IntentQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Resolve maps a key event to its intent
// Rune bindings are case-insensitive for letters so Caps Lock does not block steering
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}

	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}

	r := ev.Rune()
	if it, ok := kt.Runes[r]; ok {
		return it
	}
	if r >= 'A' && r <= 'Z' {
		return kt.Runes[r+('a'-'A')]
	}
	return IntentNone
}
