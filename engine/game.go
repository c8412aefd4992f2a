package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/systems"
)

// Game owns all simulation state and advances it one tick at a time
// Not safe for concurrent use; input handling, ticks and rendering run on one goroutine
type Game struct {
	cfg      Config
	rng      *rand.Rand
	clock    *PausableClock
	ticks    TickSource
	observer Observer

	phase GamePhase
	cause GameOverCause

	snake    *systems.Snake
	foods    *systems.FoodBag
	powerUp  *systems.PowerUp
	effects  components.ActiveEffects
	deferred *DeferredQueue

	score int
	best  int
	speed time.Duration
	frame int
}

// NewGame validates cfg and creates an idle game with one food item on the board
// observer may be nil
func NewGame(cfg Config, rng *rand.Rand, clock *PausableClock, ticks TickSource, observer Observer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("game requires a random source")
	}
	if clock == nil {
		return nil, errors.New("game requires a clock")
	}
	if ticks == nil {
		return nil, errors.New("game requires a tick source")
	}
	if observer == nil {
		observer = Observers(nil)
	}

	g := &Game{
		cfg:      cfg,
		rng:      rng,
		clock:    clock,
		ticks:    ticks,
		observer: observer,
		phase:    PhaseIdle,
		snake:    systems.NewSnake(cfg.Start),
		foods:    systems.NewFoodBag(cfg.MaxFoods, cfg.FoodLifetimeMin, cfg.FoodLifetimeSpread),
		powerUp:  systems.NewPowerUp(),
		deferred: NewDeferredQueue(),
	}
	g.reset()
	return g, nil
}

// HandleDirection buffers a turn, returns false when the input was ignored
// The first accepted direction starts the game
func (g *Game) HandleDirection(d core.Direction) bool {
	if g.phase == PhasePaused || g.phase == PhaseGameOver {
		return false
	}
	if err := g.snake.SetDirection(d); err != nil {
		return false
	}

	if g.phase == PhaseIdle {
		g.setPhase(PhaseRunning)
		g.ticks.SetInterval(g.speed)
		g.ticks.Start()
	}
	return true
}

// TogglePause switches between running and paused, freezing the game clock
func (g *Game) TogglePause() bool {
	switch g.phase {
	case PhaseRunning:
		g.clock.Pause()
		return g.setPhase(PhasePaused)
	case PhasePaused:
		g.clock.Resume()
		return g.setPhase(PhaseRunning)
	}
	return false
}

// Restart returns a finished game to idle with a fresh board, the best score is kept
func (g *Game) Restart() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.reset()
	return g.setPhase(PhaseIdle)
}

// Tick advances the simulation by one step, no-op unless running
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}
	size := g.cfg.GridSize

	for _, d := range g.deferred.Due(g.clock.Now()) {
		g.resetEffect(d.Kind)
	}

	head := g.snake.NextHead()

	if !head.InBounds(size) {
		if !g.effects.Ghost {
			g.gameOver(CauseWall)
			return
		}
		head = head.Wrap(size)
	}

	if g.snake.Occupies(head, g.snake.WillVacateTail()) && !g.effects.Shield {
		g.gameOver(CauseSelf)
		return
	}

	g.snake.Move(head)

	if item, ok := g.foods.Consume(head); ok {
		g.eat(item)
	}

	if g.powerUp.At(head) {
		g.collect()
	}

	if _, active := g.powerUp.Active(); !active && g.rng.Float64() < g.cfg.PowerUpSpawnChance {
		g.spawnPowerUp()
	}

	if g.foods.Update() {
		g.generateFood()
	}

	g.frame = (g.frame + 1) % constants.AnimationFrames
}

func (g *Game) eat(item components.FoodItem) {
	points := item.Type.Points
	if g.effects.DoublePoints {
		points *= constants.DoublePointsMultiplier
	}
	g.score += points
	if g.score > g.best {
		g.best = g.score
	}
	g.snake.Grow()

	g.emit(Event{Type: EventFoodEaten, Food: item, Points: points, Score: g.score})

	switch {
	case g.foods.Len() == 0:
		g.generateFood()
	case !g.foods.Full() && g.rng.Float64() < g.cfg.MultiFoodChance:
		g.generateFood()
	}
}

func (g *Game) collect() {
	item, _ := g.powerUp.Active()
	pt, ok := g.powerUp.Take()
	if !ok {
		return
	}

	g.applyEffect(pt.Effect)
	replaced := g.deferred.Schedule(Deferred{
		Name:     pt.Effect.String(),
		Kind:     pt.Effect,
		Deadline: g.clock.Now().Add(g.cfg.PowerUpDuration),
	})
	if replaced {
		log.Printf("Power-up %s refreshed", pt.Name)
	}

	g.emit(Event{Type: EventPowerUpCollected, PowerUp: item, Effect: pt.Effect})

	if g.rng.Float64() < g.cfg.PowerUpRespawnChance {
		g.spawnPowerUp()
	}
}

func (g *Game) applyEffect(kind components.EffectKind) {
	switch kind {
	case components.EffectSpeed:
		g.setSpeed(g.cfg.BoostInterval)
	case components.EffectGhost, components.EffectDoublePoints, components.EffectShield:
		g.effects.Set(kind, true)
	default:
		log.Printf("Ignoring unknown effect kind %d", kind)
	}
}

func (g *Game) resetEffect(kind components.EffectKind) {
	switch kind {
	case components.EffectSpeed:
		g.setSpeed(g.cfg.TickInterval)
	case components.EffectGhost, components.EffectDoublePoints, components.EffectShield:
		g.effects.Set(kind, false)
	default:
		log.Printf("Ignoring reset of unknown effect kind %d", kind)
		return
	}
	g.emit(Event{Type: EventEffectExpired, Effect: kind})
}

func (g *Game) setSpeed(d time.Duration) {
	if g.speed == d {
		return
	}
	g.speed = d
	g.ticks.SetInterval(d)
}

// occupied collects the snake and power-up cells; food bags add their own
func (g *Game) occupied() systems.Occupancy {
	set := systems.NewOccupancy()
	g.snake.Occupy(set)
	g.powerUp.Occupy(set)
	return set
}

func (g *Game) generateFood() {
	item, err := g.foods.Generate(g.rng, g.cfg.GridSize, g.occupied())
	if err != nil {
		log.Printf("Food generation skipped: %v", err)
		return
	}
	g.emit(Event{Type: EventFoodSpawned, Food: item})
}

func (g *Game) spawnPowerUp() {
	set := g.occupied()
	g.foods.Occupy(set)

	item, err := g.powerUp.Generate(g.rng, g.cfg.GridSize, set)
	if err != nil {
		log.Printf("Power-up generation skipped: %v", err)
		return
	}
	g.emit(Event{Type: EventPowerUpSpawned, PowerUp: item})
}

func (g *Game) gameOver(cause GameOverCause) {
	g.ticks.Stop()
	if n := g.deferred.CancelAll(); n > 0 {
		log.Printf("Cancelled %d pending effect reset(s)", n)
	}
	g.effects.Clear()
	g.setSpeed(g.cfg.TickInterval)
	g.cause = cause

	if !g.setPhase(PhaseGameOver) {
		return
	}
	log.Printf("Game over: %s, score %d, length %d", cause, g.score, g.snake.Len())
	g.emit(Event{Type: EventGameOver, Cause: cause, Score: g.score})
}

// reset clears the board for a new round
func (g *Game) reset() {
	g.deferred.CancelAll()
	g.effects.Clear()
	g.snake.Reset(g.cfg.Start)
	g.foods.Clear()
	g.powerUp.Clear()
	g.score = 0
	g.cause = CauseNone
	g.frame = 0
	g.speed = 0
	g.setSpeed(g.cfg.TickInterval)
	g.generateFood()
}

func (g *Game) setPhase(to GamePhase) bool {
	if !CanTransition(g.phase, to) {
		log.Printf("Rejected phase transition %s -> %s", g.phase, to)
		return false
	}
	g.phase = to
	g.emit(Event{Type: EventPhaseChanged, Phase: to, Score: g.score})
	return true
}

func (g *Game) emit(ev Event) {
	g.observer.OnEvent(ev)
}

// Phase returns the current phase
func (g *Game) Phase() GamePhase { return g.phase }

// Cause returns what ended the last game
func (g *Game) Cause() GameOverCause { return g.cause }

// Score returns the current score
func (g *Game) Score() int { return g.score }

// Best returns the best score of the session
func (g *Game) Best() int { return g.best }

// Snake returns the snake for reading
func (g *Game) Snake() *systems.Snake { return g.snake }

// Foods returns the food items on the board
func (g *Game) Foods() []components.FoodItem { return g.foods.Items() }

// PowerUp returns the active power-up
func (g *Game) PowerUp() (components.PowerUpItem, bool) { return g.powerUp.Active() }

// Effects returns the active rule modifiers
func (g *Game) Effects() components.ActiveEffects { return g.effects }

// Speed returns the current tick interval
func (g *Game) Speed() time.Duration { return g.speed }

// Boosted reports whether the speed effect is active
func (g *Game) Boosted() bool { return g.speed != g.cfg.TickInterval }

// AnimationFrame returns the cosmetic animation counter
func (g *Game) AnimationFrame() int { return g.frame }

// GridSize returns the board side length in tiles
func (g *Game) GridSize() int { return g.cfg.GridSize }

// EffectRemaining returns the game time left before kind resets
func (g *Game) EffectRemaining(kind components.EffectKind) (time.Duration, bool) {
	d, ok := g.deferred.Pending(kind.String())
	if !ok {
		return 0, false
	}
	left := d.Deadline.Sub(g.clock.Now())
	if left < 0 {
		left = 0
	}
	return left, true
}

// String summarizes the game for log lines
func (g *Game) String() string {
	return fmt.Sprintf("phase=%s score=%d best=%d len=%d speed=%v", g.phase, g.score, g.best, g.snake.Len(), g.speed)
}
