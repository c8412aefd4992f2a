package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// seedMix derives the second PCG word from a single user seed
const seedMix = 0x9e3779b97f4a7c15

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to the TOML configuration file")
	debugFlag  = flag.Bool("debug", false, "Write diagnostics to logs/snake.log")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one")
	gridFlag   = flag.Int("grid", 0, "Board side length in tiles")
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	// Nothing may reach the terminal until logging is configured
	startup := bufferStartupLogs()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake: stdout is not a terminal")
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Log.Debug)
	replayStartupLogs(startup)
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.NewString()[:8]))

	err = run(cfg, keys)

	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the loaded configuration
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "grid":
			cfg.Game.GridSize = *gridFlag
		}
	})
}

func run(cfg *config.Config, keys *input.KeyTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)
	screen.HideCursor()

	sounds := audio.NewSoundManager()
	audioErr := sounds.Initialize(cfg.AudioConfig())
	defer sounds.Cleanup()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^seedMix))

	gameCfg := cfg.GameConfig()
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	sched := engine.NewClockScheduler(gameCfg.TickInterval)
	defer sched.Stop()

	renderer := render.NewTerminalRenderer(screen)
	game, err := engine.NewGame(gameCfg, rng, clock, sched, soundObserver(sounds))
	if err != nil {
		log.Printf("Game creation failed: %v", err)
		showFatal(screen, renderer, constants.TextStartFailed, err.Error(), constants.TextExitHint)
		return fmt.Errorf("new game: %w", err)
	}
	log.Printf("Session started: seed=%d grid=%d audio=%v", seed, gameCfg.GridSize, sounds.Initialized())

	a := newApp(game, sounds, keys, renderer)
	if audioErr != nil {
		log.Printf("Audio disabled: %v", audioErr)
		a.notify("Audio unavailable")
	}

	// Input polling runs on its own goroutine, PollEvent returns nil after Fini
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.render()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				log.Printf("Session ended: %s", game)
				return nil
			}
		case <-sched.C():
			game.Tick()
		case <-frameTicker.C:
			a.render()
		}
	}
}
