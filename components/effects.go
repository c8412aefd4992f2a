package components

// ActiveEffects holds the boolean rule modifiers
// Speed is carried by the game's tick interval instead of a flag
type ActiveEffects struct {
	Ghost        bool
	DoublePoints bool
	Shield       bool
}

// Set switches the flag for kind, reports false for kinds without a flag
func (e *ActiveEffects) Set(kind EffectKind, on bool) bool {
	switch kind {
	case EffectGhost:
		e.Ghost = on
	case EffectDoublePoints:
		e.DoublePoints = on
	case EffectShield:
		e.Shield = on
	default:
		return false
	}
	return true
}

// Has reports the flag for kind
func (e ActiveEffects) Has(kind EffectKind) bool {
	switch kind {
	case EffectGhost:
		return e.Ghost
	case EffectDoublePoints:
		return e.DoublePoints
	case EffectShield:
		return e.Shield
	}
	return false
}

// Any reports whether any flag is set
func (e ActiveEffects) Any() bool {
	return e.Ghost || e.DoublePoints || e.Shield
}

// Clear resets all flags
func (e *ActiveEffects) Clear() {
	*e = ActiveEffects{}
}
