package pacmaze

import "github.com/vovakirdan/pacmaze/internal/core"

// Direction is the player's movement intent.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Delta returns the unit vector for the direction. DirNone is the zero vector.
func (d Direction) Delta() core.Vec {
	switch d {
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	case DirUp:
		return core.V(0, -1)
	case DirDown:
		return core.V(0, 1)
	default:
		return core.Vec{}
	}
}

// Cardinal reports whether d is one of the four movement directions.
func (d Direction) Cardinal() bool {
	return d >= DirLeft && d <= DirDown
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "invalid"
	}
}

// Player is the agent controlled by input.
type Player struct {
	Pos    core.Vec
	Dir    Direction
	Radius float64
	Score  int
	Lives  int

	Powered    bool
	PowerTicks int // Ticks elapsed since the last power pellet

	// Chomping is the mouth animation phase; true draws the closed mouth.
	Chomping bool
	animTick int
}

// NewPlayer places a player at the configured start, stationary.
func NewPlayer(p Params) *Player {
	return &Player{
		Pos:      p.PlayerStart,
		Radius:   p.PlayerRadius,
		Lives:    p.Lives,
		Chomping: true,
	}
}

// ProposeMove extrapolates the position one tick along the current intent.
func (p *Player) ProposeMove(speed float64) core.Vec {
	return p.Pos.Add(p.Dir.Delta().Scale(speed))
}

// ResolveMove applies a proposed position. A destination inside a wall
// rejects the whole step; otherwise each axis is clamped to the world.
// Returns whether the position changed.
func (p *Player) ResolveMove(next core.Vec, m *Maze, b Bounds) bool {
	pos, ok := resolveStep(p.Pos, next, m, b)
	p.Pos = pos
	return ok
}

// Animate advances the mouth animation, toggling every period ticks.
func (p *Player) Animate(period int) {
	if period <= 0 {
		return
	}
	p.animTick++
	if p.animTick%period == 0 {
		p.Chomping = !p.Chomping
	}
}

// PowerUp starts (or restarts) power mode.
func (p *Player) PowerUp() {
	p.Powered = true
	p.PowerTicks = 0
}

// TickPower advances the power timer and reports whether power mode
// expired on this tick. It does nothing while not powered.
func (p *Player) TickPower(duration int) bool {
	if !p.Powered {
		return false
	}
	p.PowerTicks++
	if p.PowerTicks >= duration {
		p.Powered = false
		p.PowerTicks = 0
		return true
	}
	return false
}
