package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/systems"
)

// Screen is the subset of tcell.Screen the renderer draws on
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// GameView is the read-only game state a frame is drawn from
type GameView interface {
	GridSize() int
	Phase() engine.GamePhase
	Cause() engine.GameOverCause
	Score() int
	Best() int
	Snake() *systems.Snake
	Foods() []components.FoodItem
	PowerUp() (components.PowerUpItem, bool)
	Effects() components.ActiveEffects
	Boosted() bool
	EffectRemaining(kind components.EffectKind) (time.Duration, bool)
	AnimationFrame() int
}

// HUD carries frame state that lives outside the game
type HUD struct {
	Muted   bool
	Message string // Transient notice on the hint line
}

const (
	blinkPeriod       = 8  // Frames per blink cycle of expiring food
	swayPeriod        = 30 // Frames per grass sway step
	countdownBarWidth = 8
	countdownSlot     = countdownBarWidth + 5
	decorationModulo  = 11
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen Screen
	width  int
	height int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates the cached screen size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Fits reports whether a board of gridSize tiles fits on the screen
func (r *TerminalRenderer) Fits(gridSize int) bool {
	w, h := constants.RequiredScreenSize(gridSize)
	return r.width >= w && r.height >= h
}

// RenderFrame draws one complete frame
// A screen too small for the board shows a message instead
func (r *TerminalRenderer) RenderFrame(view GameView, hud HUD) {
	r.screen.Clear()
	r.fill(RgbBackground)

	grid := view.GridSize()
	if !r.Fits(grid) {
		w, h := constants.RequiredScreenSize(grid)
		r.drawMessage(RgbOverlayTitle,
			constants.TextTooSmall,
			fmt.Sprintf("Need %dx%d, have %dx%d", w, h, r.width, r.height),
			constants.TextTooSmallHint,
		)
		r.screen.Show()
		return
	}

	frame := view.AnimationFrame()
	effects := view.Effects()

	r.drawBackground(grid, frame)
	r.drawBorder(grid, effects.Ghost)
	r.drawFoods(view.Foods(), frame)
	if item, ok := view.PowerUp(); ok {
		r.drawPowerUp(item, grid, frame)
	}
	r.drawSnake(view.Snake(), effects, view.Boosted())
	r.drawStatus(view, hud)

	switch view.Phase() {
	case engine.PhasePaused:
		r.drawOverlay(grid, RgbPausedTitle, constants.TextPaused, constants.TextResumeHint)
	case engine.PhaseGameOver:
		detail := fmt.Sprintf("Score %d", view.Score())
		if cause := view.Cause().String(); cause != "" {
			detail = fmt.Sprintf("You %s. Score %d", cause, view.Score())
		}
		r.drawOverlay(grid, RgbOverlayTitle, constants.TextGameOver, detail, constants.TextRestartHint)
	}

	r.screen.Show()
}

// RenderMessage clears the screen and shows centered lines, used before a game exists
func (r *TerminalRenderer) RenderMessage(lines ...string) {
	r.screen.Clear()
	r.fill(RgbBackground)
	r.drawMessage(RgbOverlayTitle, lines...)
	r.screen.Show()
}

// cellOrigin returns the screen position of a board tile
func cellOrigin(p core.Point) (x, y int) {
	return constants.BoardOffsetX + 1 + p.X*constants.TileWidth, constants.BoardOffsetY + 1 + p.Y
}

func (r *TerminalRenderer) fill(bg RGB) {
	st := style(RgbStatusText, bg)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// drawTile puts a glyph on a two-column tile, narrow glyphs are padded
func (r *TerminalRenderer) drawTile(p core.Point, glyph rune, st tcell.Style) {
	x, y := cellOrigin(p)
	r.screen.SetContent(x, y, glyph, nil, st)
	if runewidth.RuneWidth(glyph) < constants.TileWidth {
		r.screen.SetContent(x+1, y, ' ', nil, st)
	}
}

// decoration returns the deterministic grass or flower glyph of a cell
func decoration(p core.Point, frame int) (rune, RGB, bool) {
	h := (p.X*73856093 ^ p.Y*19349663) & 0x7fffffff
	if h%decorationModulo != 0 {
		return 0, RGB{}, false
	}
	if h%3 == 0 {
		return '✿', RgbFlower, true
	}
	if (frame/swayPeriod+p.X)%2 == 0 {
		return '"', RgbGrass, true
	}
	return '\'', RgbGrass, true
}

func (r *TerminalRenderer) drawBackground(grid, frame int) {
	for y := 0; y < grid; y++ {
		for x := 0; x < grid; x++ {
			p := core.Point{X: x, Y: y}
			bg := tileColor(x, y)
			glyph := ' '
			fg := RgbStatusText
			if g, c, ok := decoration(p, frame); ok {
				glyph, fg = g, c
			}
			r.drawTile(p, glyph, style(fg, bg))
		}
	}
}

func (r *TerminalRenderer) drawBorder(grid int, ghost bool) {
	color := RgbBorder
	if ghost {
		// Walls wrap, draw them faded
		color = RgbBackground.Blend(RgbBorder, 0.35)
	}
	st := style(color, RgbBackground)

	left := constants.BoardOffsetX
	top := constants.BoardOffsetY
	right := left + 1 + grid*constants.TileWidth
	bottom := top + 1 + grid

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, st)
		r.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, st)
		r.screen.SetContent(right, y, '│', nil, st)
	}
	r.screen.SetContent(left, top, '┌', nil, st)
	r.screen.SetContent(right, top, '┐', nil, st)
	r.screen.SetContent(left, bottom, '└', nil, st)
	r.screen.SetContent(right, bottom, '┘', nil, st)
}

// headGlyph points in the direction of travel
func headGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '▲'
	case core.DirDown:
		return '▼'
	case core.DirLeft:
		return '◀'
	case core.DirRight:
		return '▶'
	}
	return '●'
}

func (r *TerminalRenderer) drawSnake(s *systems.Snake, effects components.ActiveEffects, boosted bool) {
	segments := s.Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		p := segments[i]
		bg := tileColor(p.X, p.Y)

		if i == 0 {
			head := headColor(effects, boosted)
			r.drawTile(p, headGlyph(s.Direction()), style(RgbSnakeEye, head))
			continue
		}

		body := RgbSnakeBody
		if effects.Ghost {
			body = bg.Blend(RgbSnakeBody, ghostAlpha)
		}
		r.drawTile(p, ' ', style(body, body))
	}
}

func (r *TerminalRenderer) drawFoods(foods []components.FoodItem, frame int) {
	for _, f := range foods {
		if f.TimeLeft <= constants.FoodLifetimeWarning && (frame/(blinkPeriod/2))%2 == 1 {
			continue
		}
		r.drawTile(f.Pos, f.Type.Glyph, style(FromColor(f.Type.Color), tileColor(f.Pos.X, f.Pos.Y)))
	}
}

// pulse returns a brightness factor oscillating once per animation cycle
func pulse(frame int) float64 {
	phase := 2 * math.Pi * float64(frame) / float64(constants.AnimationFrames)
	return 0.75 + 0.25*math.Sin(phase)
}

func (r *TerminalRenderer) drawPowerUp(item components.PowerUpItem, grid, frame int) {
	base := FromColor(item.Type.Color)
	tile := tileColor(item.Pos.X, item.Pos.Y)
	bg := tile.Blend(base.Scale(pulse(frame)), 0.45)
	r.drawTile(item.Pos, item.Type.Glyph, style(base, bg))

	// Name above the item, below it on the top row
	ly := item.Pos.Y - 1
	if ly < 0 {
		ly = item.Pos.Y + 1
	}
	if ly >= grid {
		return
	}
	x, _ := cellOrigin(item.Pos)
	_, y := cellOrigin(core.Point{Y: ly})
	name := item.Type.Name
	x -= (runewidth.StringWidth(name) - constants.TileWidth) / 2

	boardLeft := constants.BoardOffsetX + 1
	boardRight := boardLeft + grid*constants.TileWidth
	x = max(boardLeft, min(x, boardRight-runewidth.StringWidth(name)))
	r.drawText(x, y, name, style(base, RgbBackground))
}

func (r *TerminalRenderer) drawText(x, y int, text string, st tcell.Style) int {
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, st)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

func (r *TerminalRenderer) drawStatus(view GameView, hud HUD) {
	grid := view.GridSize()
	x0 := constants.BoardOffsetX
	y0 := constants.BoardOffsetY + grid + 2
	bg := RgbBackground

	// Food countdowns
	x := x0
	for _, f := range view.Foods() {
		if x+countdownSlot > r.width {
			break
		}
		r.screen.SetContent(x, y0, f.Type.Glyph, nil, style(FromColor(f.Type.Color), bg))
		x += constants.TileWidth + 1
		filled := int(math.Ceil(f.Remaining() * countdownBarWidth))
		for i := 0; i < countdownBarWidth; i++ {
			fg := RgbCountdownTrack
			if i < filled {
				fg = FromColor(f.Type.Color)
			}
			r.screen.SetContent(x+i, y0, '▬', nil, style(fg, bg))
		}
		x += countdownBarWidth + 2
	}

	score := fmt.Sprintf("Score: %d  Best: %d  Length: %d", view.Score(), view.Best(), view.Snake().Len())
	r.drawText(x0, y0+1, score, style(RgbStatusText, bg))

	x = x0
	for _, kind := range components.EffectKinds {
		left, ok := view.EffectRemaining(kind)
		if !ok {
			continue
		}
		pt, found := powerUpType(kind)
		if !found {
			continue
		}
		label := fmt.Sprintf("%c %s %.1fs ", pt.Glyph, pt.Name, left.Seconds())
		x = r.drawText(x, y0+2, label, style(FromColor(pt.Color), bg))
	}

	var hints []string
	if hud.Message != "" {
		hints = append(hints, hud.Message)
	}
	if view.Phase() == engine.PhaseIdle {
		hints = append(hints, constants.TextStartHint)
	}
	if hud.Muted {
		hints = append(hints, "muted")
	}
	r.drawText(x0, y0+3, strings.Join(hints, "  "), style(RgbStatusDim, bg))
}

func powerUpType(kind components.EffectKind) (components.PowerUpType, bool) {
	for _, pt := range components.PowerUpTypes {
		if pt.Effect == kind {
			return pt, true
		}
	}
	return components.PowerUpType{}, false
}

// drawOverlay centers a boxed message over the board
func (r *TerminalRenderer) drawOverlay(grid int, titleColor RGB, title string, lines ...string) {
	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width += 4
	height := len(lines) + 4

	boardW := grid * constants.TileWidth
	left := constants.BoardOffsetX + 1 + (boardW-width)/2
	top := constants.BoardOffsetY + 1 + (grid-height)/2

	bg := RgbOverlayBackground
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style(RgbStatusText, bg))
		}
	}

	r.drawCentered(left, width, top+1, title, style(titleColor, bg).Bold(true))
	for i, l := range lines {
		r.drawCentered(left, width, top+3+i, l, style(RgbStatusText, bg))
	}
}

// drawMessage centers lines on the whole screen
func (r *TerminalRenderer) drawMessage(titleColor RGB, lines ...string) {
	top := (r.height - len(lines)) / 2
	for i, l := range lines {
		st := style(RgbStatusText, RgbBackground)
		if i == 0 {
			st = style(titleColor, RgbBackground).Bold(true)
		}
		r.drawCentered(0, r.width, max(top, 0)+i, l, st)
	}
}

func (r *TerminalRenderer) drawCentered(left, width, y int, text string, st tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	x := left + (width-runewidth.StringWidth(text))/2
	r.drawText(max(x, 0), y, text, st)
}
