package pacmaze

import (
	"fmt"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// Visual characters for rendering
const (
	WallChar        = '█'
	PelletChar      = '·'
	PowerPelletChar = '●'
	GhostChar       = 'ᗣ'
	PlayerClosed    = '●'
)

// playerGlyphs holds the open-mouth glyph per heading.
var playerGlyphs = map[Direction]rune{
	DirNone:  'ᗧ',
	DirRight: 'ᗧ',
	DirLeft:  'ᗤ',
	DirUp:    'ᗢ',
	DirDown:  'ᗜ',
}

// The visible part of the world: the maze plus a small margin.
const (
	viewMinX = 90.0
	viewMaxX = 730.0
	viewMinY = 90.0
	viewMaxY = 530.0
)

// Minimum terminal size for a readable maze.
const (
	minScreenW = 40
	minScreenH = 16
)

// projection maps world coordinates into screen cells below the HUD row.
type projection struct {
	cols, rows int
	top        int
}

func newProjection(dst *core.Screen) projection {
	return projection{cols: dst.Width(), rows: dst.Height() - 1, top: 1}
}

func (p projection) cell(v core.Vec) (int, int) {
	x := int((v.X - viewMinX) / (viewMaxX - viewMinX) * float64(p.cols))
	y := int((v.Y-viewMinY)/(viewMaxY-viewMinY)*float64(p.rows)) + p.top
	return x, y
}

func (p projection) rect(b core.Box) core.Rect {
	x0, y0 := p.cell(core.V(b.X, b.Y))
	x1, y1 := p.cell(core.V(b.X+b.W, b.Y+b.H))
	w := max(x1-x0, 1)
	h := max(y1-y0, 1)
	return core.NewRect(x0, y0, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	r := g.round
	proj := newProjection(dst)

	for _, w := range r.Maze.Walls() {
		dst.DrawRect(proj.rect(w), WallChar, core.ColorBlue)
	}

	for _, p := range r.Pellets {
		if p.Exists {
			x, y := proj.cell(p.Pos)
			dst.SetColored(x, y, PelletChar, core.ColorWhite)
		}
	}
	for _, p := range r.PowerPellets {
		if p.Exists {
			x, y := proj.cell(p.Pos)
			dst.SetColored(x, y, PowerPelletChar, core.ColorBlue)
		}
	}

	px, py := proj.cell(r.Player.Pos)
	dst.SetColored(px, py, playerGlyph(r.Player), core.ColorYellow)

	for _, gh := range r.Ghosts {
		c := gh.Color
		if gh.Frightened {
			c = core.ColorBlue
		}
		x, y := proj.cell(gh.Pos)
		dst.SetColored(x, y, GhostChar, c)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func playerGlyph(p *Player) rune {
	if p.Chomping {
		return PlayerClosed
	}
	return playerGlyphs[p.Dir]
}

func (g *Game) renderHUD(dst *core.Screen) {
	p := g.round.Player
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Lives: %d", p.Score, p.Lives))

	if p.Powered {
		left := g.params.PowerTicks - p.PowerTicks
		text := fmt.Sprintf("POWER %d", left)
		dst.DrawTextColored(dst.Width()-len(text)-1, 0, text, core.ColorBlue)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch g.round.Outcome() {
	case OutcomeGameOver:
		dst.DrawTextCentered(mid, "Game Over! Press SPACE to restart", core.ColorRed)
	case OutcomeVictory:
		dst.DrawTextCentered(mid, "You Won! Press SPACE to restart", core.ColorYellow)
	default:
		if g.paused {
			dst.DrawTextCentered(mid, "Paused", core.ColorWhite)
		}
	}
}
