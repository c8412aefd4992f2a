package engine

import "github.com/lixenwraith/snake/components"

// EventType discriminates game events
type EventType int

const (
	EventPhaseChanged EventType = iota
	EventFoodEaten
	EventFoodSpawned
	EventPowerUpSpawned
	EventPowerUpCollected
	EventEffectExpired
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventFoodEaten:
		return "FoodEaten"
	case EventFoodSpawned:
		return "FoodSpawned"
	case EventPowerUpSpawned:
		return "PowerUpSpawned"
	case EventPowerUpCollected:
		return "PowerUpCollected"
	case EventEffectExpired:
		return "EffectExpired"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event describes something that happened during input handling or a tick
// Only the fields relevant to Type are set
type Event struct {
	Type    EventType
	Phase   GamePhase
	Food    components.FoodItem
	PowerUp components.PowerUpItem
	Effect  components.EffectKind
	Points  int
	Score   int
	Cause   GameOverCause
}

// Observer receives game events synchronously on the game goroutine
type Observer interface {
	OnEvent(ev Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ev Event)

// OnEvent calls f(ev)
func (f ObserverFunc) OnEvent(ev Event) {
	f(ev)
}

// Observers fans an event out to every member
type Observers []Observer

// OnEvent forwards ev to every non-nil observer in order
func (o Observers) OnEvent(ev Event) {
	for _, obs := range o {
		if obs != nil {
			obs.OnEvent(ev)
		}
	}
}
