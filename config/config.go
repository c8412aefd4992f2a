package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
)

const (
	// DefaultPath is read when no -config flag is given, a missing file is not an error
	DefaultPath = "snake.toml"

	// DefaultEnvFile holds optional SNAKE_* overrides
	DefaultEnvFile = ".env"

	envPrefix = "SNAKE_"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete runtime configuration
type Config struct {
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`

	// Key overrides, action "none" unbinds
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// GameConfig holds the rule tunables
type GameConfig struct {
	GridSize             int     `toml:"grid_size"`
	SpeedMs              int     `toml:"speed_ms"`
	BoostSpeedMs         int     `toml:"boost_speed_ms"`
	PowerUpDurationMs    int     `toml:"powerup_duration_ms"`
	MaxFoods             int     `toml:"max_foods"`
	MultiFoodChance      float64 `toml:"multi_food_chance"`
	PowerUpSpawnChance   float64 `toml:"powerup_spawn_chance"`
	PowerUpRespawnChance float64 `toml:"powerup_respawn_chance"`
	Seed                 uint64  `toml:"seed"` // 0 picks a random seed
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// LogConfig holds diagnostics settings
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			GridSize:             constants.GridSize,
			SpeedMs:              int(constants.GameUpdateInterval / time.Millisecond),
			BoostSpeedMs:         int(constants.BoostUpdateInterval / time.Millisecond),
			PowerUpDurationMs:    int(constants.PowerUpDuration / time.Millisecond),
			MaxFoods:             constants.MaxFoods,
			MultiFoodChance:      constants.MultiFoodSpawnChance,
			PowerUpSpawnChance:   constants.PowerUpSpawnChance,
			PowerUpRespawnChance: constants.PowerUpRespawnChance,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path, the .env file and SNAKE_* variables
// A missing file is only an error when path is not DefaultPath
func Load(path string) (*Config, error) {
	return load(path, DefaultEnvFile)
}

func load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	md, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		log.Printf("No config file at %s, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("config file %s: %w", path, err)
	default:
		for _, key := range md.Undecoded() {
			log.Printf("Ignoring unknown config key %q in %s", key.String(), path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from SNAKE_* variables, malformed values are ignored
func (c *Config) applyEnv() {
	envInt("GRID_SIZE", &c.Game.GridSize)
	envInt("SPEED_MS", &c.Game.SpeedMs)
	envInt("BOOST_SPEED_MS", &c.Game.BoostSpeedMs)
	envInt("POWERUP_DURATION_MS", &c.Game.PowerUpDurationMs)

	if v := os.Getenv(envPrefix + "SEED"); v != "" {
		if val, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = val
		} else {
			log.Printf("Ignoring %sSEED=%q: %v", envPrefix, v, err)
		}
	}

	envBool("AUDIO_ENABLED", &c.Audio.Enabled)
	envBool("DEBUG", &c.Log.Debug)

	// Master volume is given as 0-100
	if v := os.Getenv(envPrefix + "MASTER_VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		} else {
			log.Printf("Ignoring %sMASTER_VOLUME=%q: %v", envPrefix, v, err)
		}
	}
}

func envInt(name string, dst *int) {
	v := os.Getenv(envPrefix + name)
	if v == "" {
		return
	}
	val, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("Ignoring %s%s=%q: %v", envPrefix, name, v, err)
		return
	}
	*dst = val
}

func envBool(name string, dst *bool) {
	v := os.Getenv(envPrefix + name)
	if v == "" {
		return
	}
	val, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("Ignoring %s%s=%q: %v", envPrefix, name, v, err)
		return
	}
	*dst = val
}

// Validate checks every section and returns an error wrapping ErrInvalid
func (c *Config) Validate() error {
	if err := c.GameConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master volume %v outside [0, 1]", ErrInvalid, c.Audio.MasterVolume)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	if _, err := c.KeyTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// GameConfig converts the game section to engine rules
func (c *Config) GameConfig() engine.Config {
	g := engine.DefaultConfig()
	g.GridSize = c.Game.GridSize
	g.TickInterval = time.Duration(c.Game.SpeedMs) * time.Millisecond
	g.BoostInterval = time.Duration(c.Game.BoostSpeedMs) * time.Millisecond
	g.PowerUpDuration = time.Duration(c.Game.PowerUpDurationMs) * time.Millisecond
	g.MaxFoods = c.Game.MaxFoods
	g.MultiFoodChance = c.Game.MultiFoodChance
	g.PowerUpSpawnChance = c.Game.PowerUpSpawnChance
	g.PowerUpRespawnChance = c.Game.PowerUpRespawnChance
	return g
}

// AudioConfig converts the audio section to sound manager settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	a := audio.DefaultAudioConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.MasterVolume
	a.SampleRate = c.Audio.SampleRate
	return a
}

// KeyTable merges the key overrides into the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyBindings(c.Keys, c.SpecialKeys)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
