package main

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	cfg := engine.DefaultConfig()
	cfg.PowerUpSpawnChance = 0
	clock := engine.NewPausableClock(engine.NewMockTimeProvider(time.Unix(0, 0)))
	sched := engine.NewClockScheduler(time.Hour)
	t.Cleanup(sched.Stop)

	game, err := engine.NewGame(cfg, rand.New(rand.NewPCG(1, 2)), clock, sched, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return newApp(game, audio.NewSoundManager(), input.DefaultKeyTable(), render.NewTerminalRenderer(screen))
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event engine.EventType
		want  audio.SoundType
		ok    bool
	}{
		{engine.EventFoodEaten, audio.SoundEat, true},
		{engine.EventPowerUpCollected, audio.SoundPowerUp, true},
		{engine.EventEffectExpired, audio.SoundExpire, true},
		{engine.EventGameOver, audio.SoundGameOver, true},
		{engine.EventFoodSpawned, 0, false},
		{engine.EventPhaseChanged, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			got, ok := soundFor(engine.Event{Type: tt.event})
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("soundFor(%s) = (%v, %v), want (%v, %v)", tt.event, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHandleIntent_Flow(t *testing.T) {
	a := newTestApp(t)

	if !a.handleIntent(input.IntentPause) {
		t.Fatal("Pause must not quit")
	}
	if a.game.Phase() != engine.PhaseIdle {
		t.Errorf("Expected pause to be ignored while idle, got %s", a.game.Phase())
	}

	a.handleIntent(input.IntentUp)
	if a.game.Phase() != engine.PhaseRunning {
		t.Fatalf("Expected first direction to start the game, got %s", a.game.Phase())
	}

	a.handleIntent(input.IntentPause)
	if a.game.Phase() != engine.PhasePaused {
		t.Errorf("Expected paused, got %s", a.game.Phase())
	}
	a.handleIntent(input.IntentPause)
	if a.game.Phase() != engine.PhaseRunning {
		t.Errorf("Expected running after second pause, got %s", a.game.Phase())
	}

	if a.handleIntent(input.IntentQuit) {
		t.Error("Expected quit to stop the loop")
	}
}

func TestHandleIntent_Mute(t *testing.T) {
	a := newTestApp(t)

	a.handleIntent(input.IntentToggleMute)
	if !a.hud.Muted || !a.sounds.Muted() {
		t.Error("Expected muted after toggle")
	}
	a.handleIntent(input.IntentToggleMute)
	if a.hud.Muted || a.sounds.Muted() {
		t.Error("Expected unmuted after second toggle")
	}
}

func TestHandleEvent_Keys(t *testing.T) {
	a := newTestApp(t)

	if !a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Fatal("Arrow key must not quit")
	}
	if a.game.Phase() != engine.PhaseRunning {
		t.Errorf("Expected arrow key to start the game, got %s", a.game.Phase())
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to quit")
	}
}

func TestHandleEvent_Resize(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(tcell.NewEventResize(20, 10))
	if a.renderer.Fits(a.game.GridSize()) {
		t.Error("Expected renderer to track the smaller size")
	}
	a.handleEvent(tcell.NewEventResize(80, 40))
	if !a.renderer.Fits(a.game.GridSize()) {
		t.Error("Expected renderer to fit after growing")
	}
}

func TestNoticeExpires(t *testing.T) {
	a := newTestApp(t)

	now := time.Unix(100, 0)
	a.now = func() time.Time { return now }

	a.notify("Audio unavailable")
	a.render()
	if a.hud.Message == "" {
		t.Fatal("Expected notice to be shown")
	}

	now = now.Add(noticeDuration + time.Millisecond)
	a.render()
	if a.hud.Message != "" {
		t.Errorf("Expected notice to expire, got %q", a.hud.Message)
	}
}

// screenText flattens a simulation screen into rows of runes
func screenText(screen tcell.SimulationScreen) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			b.WriteByte('\n')
		}
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestShowFatal(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); err != nil {
		t.Fatalf("post key: %v", err)
	}

	done := make(chan struct{})
	go func() {
		showFatal(screen, render.NewTerminalRenderer(screen), constants.TextStartFailed, "board is full", constants.TextExitHint)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected a key press to dismiss the message")
	}

	text := screenText(screen)
	for _, want := range []string{constants.TextStartFailed, "board is full", constants.TextExitHint} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}
}
