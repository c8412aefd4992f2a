package constants

import "time"

// Game Loop Timing Constants
const (
	// GameUpdateInterval is the base tick interval of the game loop
	GameUpdateInterval = 100 * time.Millisecond

	// BoostUpdateInterval is the tick interval while the speed power-up is active
	BoostUpdateInterval = 50 * time.Millisecond

	// MinUpdateInterval bounds configured tick intervals from below
	MinUpdateInterval = 10 * time.Millisecond

	// FrameUpdateInterval redraws the screen between ticks so overlays stay responsive
	FrameUpdateInterval = 33 * time.Millisecond
)

// Board Constants
const (
	// GridSize is the number of tiles along each side of the square board
	GridSize = 20

	// MinGridSize keeps the start cell on the board
	MinGridSize = 12

	// MaxGridSize bounds the full-grid scan used for placement
	MaxGridSize = 64

	// StartX, StartY is the fixed origin of a fresh snake
	StartX = 10
	StartY = 10
)

// Food Constants
const (
	// MaxFoods is the maximum number of food items on the board at once
	MaxFoods = 3

	// MultiFoodSpawnChance is the chance to add another item after one is eaten
	MultiFoodSpawnChance = 0.3

	// FoodLifetimeMin is the shortest food lifetime in ticks
	FoodLifetimeMin = 75

	// FoodLifetimeSpread is the width of the random lifetime range [min, min+spread)
	FoodLifetimeSpread = 50

	// FoodLifetimeWarning is the remaining lifetime at which food starts blinking
	FoodLifetimeWarning = 20
)

// Power-up Constants
const (
	// PowerUpDuration is how long a collected effect lasts on the game clock
	PowerUpDuration = 5 * time.Second

	// PowerUpSpawnChance is the per-tick chance to spawn a power-up when none is active
	PowerUpSpawnChance = 0.005

	// PowerUpRespawnChance is the chance to spawn a new power-up right after collecting one
	PowerUpRespawnChance = 0.2

	// DoublePointsMultiplier applies to food points while double points is active
	DoublePointsMultiplier = 2
)

// Placement Constants
const (
	// PlacementAttempts is the number of random probes before falling back to a full scan
	PlacementAttempts = 64
)

// Animation Constants
const (
	// AnimationFrames is the period of the cosmetic animation counter
	AnimationFrames = 60
)
