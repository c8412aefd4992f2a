package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// noticeDuration is how long a HUD message stays on screen
const noticeDuration = 3 * time.Second

// app routes terminal events to the game and draws frames, all on the main goroutine
type app struct {
	game     *engine.Game
	sounds   *audio.SoundManager
	keys     *input.KeyTable
	renderer *render.TerminalRenderer

	hud         render.HUD
	noticeUntil time.Time
	now         func() time.Time
}

func newApp(game *engine.Game, sounds *audio.SoundManager, keys *input.KeyTable, renderer *render.TerminalRenderer) *app {
	return &app{
		game:     game,
		sounds:   sounds,
		keys:     keys,
		renderer: renderer,
		now:      time.Now,
	}
}

// notify shows a transient message on the hint line
func (a *app) notify(msg string) {
	a.hud.Message = msg
	a.noticeUntil = a.now().Add(noticeDuration)
}

// handleEvent processes one terminal event, returns false when the player quits
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.renderer.Resize(w, h)
		a.render()
	case *tcell.EventKey:
		return a.handleIntent(a.keys.Resolve(ev))
	}
	return true
}

// handleIntent applies one semantic action, returns false on quit
func (a *app) handleIntent(it input.IntentType) bool {
	if d, ok := it.Direction(); ok {
		a.game.HandleDirection(d)
		return true
	}

	switch it {
	case input.IntentPause:
		a.game.TogglePause()
	case input.IntentRestart:
		a.game.Restart()
	case input.IntentToggleMute:
		a.hud.Muted = a.sounds.ToggleMute()
		log.Printf("Muted: %v", a.hud.Muted)
	case input.IntentQuit:
		log.Printf("Quit requested: %s", a.game)
		return false
	}
	return true
}

// render draws the current frame, expiring stale notices first
func (a *app) render() {
	if a.hud.Message != "" && a.now().After(a.noticeUntil) {
		a.hud.Message = ""
	}
	a.renderer.RenderFrame(a.game, a.hud)
}

// showFatal displays lines until a key is pressed or the screen closes
func showFatal(screen tcell.Screen, r *render.TerminalRenderer, lines ...string) {
	r.RenderMessage(lines...)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			w, h := ev.Size()
			r.Resize(w, h)
			r.RenderMessage(lines...)
		}
	}
}

// soundFor maps a game event to its effect
func soundFor(ev engine.Event) (audio.SoundType, bool) {
	switch ev.Type {
	case engine.EventFoodEaten:
		return audio.SoundEat, true
	case engine.EventPowerUpCollected:
		return audio.SoundPowerUp, true
	case engine.EventEffectExpired:
		return audio.SoundExpire, true
	case engine.EventGameOver:
		return audio.SoundGameOver, true
	}
	return 0, false
}

// soundObserver plays the effect of every event that has one
func soundObserver(sounds *audio.SoundManager) engine.Observer {
	return engine.ObserverFunc(func(ev engine.Event) {
		if s, ok := soundFor(ev); ok {
			sounds.Play(s)
		}
	})
}
