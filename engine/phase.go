package engine

// GamePhase is the state of the game loop
type GamePhase int

const (
	PhaseIdle     GamePhase = iota // Waiting for the first direction
	PhaseRunning                   // Ticking
	PhasePaused                    // Ticks ignored, game clock frozen
	PhaseGameOver                  // Fatal collision, waiting for restart
)

// String returns the name of the phase
func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver},
	PhasePaused:   {PhaseRunning},
	PhaseGameOver: {PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// GameOverCause records what ended the game
type GameOverCause int

const (
	CauseNone GameOverCause = iota
	CauseWall
	CauseSelf
)

func (c GameOverCause) String() string {
	switch c {
	case CauseWall:
		return "hit the wall"
	case CauseSelf:
		return "bit itself"
	default:
		return ""
	}
}
