package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// ErrInvalidConfig is wrapped by every game configuration validation failure
var ErrInvalidConfig = errors.New("invalid game configuration")

// Config holds the tunable game rules
type Config struct {
	GridSize int
	Start    core.Point

	TickInterval    time.Duration
	BoostInterval   time.Duration
	PowerUpDuration time.Duration

	MaxFoods           int
	FoodLifetimeMin    int
	FoodLifetimeSpread int

	MultiFoodChance      float64
	PowerUpSpawnChance   float64
	PowerUpRespawnChance float64
}

// DefaultConfig returns the standard rules
func DefaultConfig() Config {
	return Config{
		GridSize:             constants.GridSize,
		Start:                core.Point{X: constants.StartX, Y: constants.StartY},
		TickInterval:         constants.GameUpdateInterval,
		BoostInterval:        constants.BoostUpdateInterval,
		PowerUpDuration:      constants.PowerUpDuration,
		MaxFoods:             constants.MaxFoods,
		FoodLifetimeMin:      constants.FoodLifetimeMin,
		FoodLifetimeSpread:   constants.FoodLifetimeSpread,
		MultiFoodChance:      constants.MultiFoodSpawnChance,
		PowerUpSpawnChance:   constants.PowerUpSpawnChance,
		PowerUpRespawnChance: constants.PowerUpRespawnChance,
	}
}

// Validate checks ranges and returns an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	if c.GridSize < constants.MinGridSize || c.GridSize > constants.MaxGridSize {
		return fmt.Errorf("%w: grid size %d outside [%d, %d]", ErrInvalidConfig, c.GridSize, constants.MinGridSize, constants.MaxGridSize)
	}
	if !c.Start.InBounds(c.GridSize) {
		return fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalidConfig, c.Start, c.GridSize, c.GridSize)
	}
	if c.TickInterval < constants.MinUpdateInterval {
		return fmt.Errorf("%w: tick interval %v below %v", ErrInvalidConfig, c.TickInterval, constants.MinUpdateInterval)
	}
	if c.BoostInterval < constants.MinUpdateInterval {
		return fmt.Errorf("%w: boost interval %v below %v", ErrInvalidConfig, c.BoostInterval, constants.MinUpdateInterval)
	}
	if c.PowerUpDuration <= 0 {
		return fmt.Errorf("%w: power-up duration must be positive", ErrInvalidConfig)
	}
	if c.MaxFoods < 1 || c.MaxFoods >= c.GridSize*c.GridSize {
		return fmt.Errorf("%w: max foods %d", ErrInvalidConfig, c.MaxFoods)
	}
	if c.FoodLifetimeMin < 1 || c.FoodLifetimeSpread < 1 {
		return fmt.Errorf("%w: food lifetime %d+%d", ErrInvalidConfig, c.FoodLifetimeMin, c.FoodLifetimeSpread)
	}
	for name, p := range map[string]float64{
		"multi food chance":       c.MultiFoodChance,
		"power-up spawn chance":   c.PowerUpSpawnChance,
		"power-up respawn chance": c.PowerUpRespawnChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalidConfig, name, p)
		}
	}
	return nil
}
