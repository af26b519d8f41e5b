package pacmaze

import (
	"math"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// Strategy selects how an active ghost picks its target.
type Strategy int

const (
	StrategyDirect    Strategy = iota // Head straight for the player
	StrategyIntercept                 // Aim ahead of the player along its heading
	StrategyPatrol                    // Aim at the point diagonally opposite the player
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyIntercept:
		return "intercept"
	case StrategyPatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

// ghostSlot describes one ghost of the fixed lineup.
type ghostSlot struct {
	spawn    core.Vec
	color    core.Color
	strategy Strategy
}

var ghostLineup = []ghostSlot{
	{core.V(385, 280), core.ColorRed, StrategyDirect},
	{core.V(385, 280), core.ColorPink, StrategyIntercept},
	{core.V(385, 310), core.ColorOrange, StrategyPatrol},
	{core.V(385, 310), core.ColorPurple, StrategyDirect},
}

// Ghost is an autonomous pursuer.
//
// A ghost starts Caged. Its exit countdown runs down one per tick; at zero it
// rises to the exit line and becomes active. Scattering and Frightened are
// independent modifiers of the active state.
type Ghost struct {
	Pos      core.Vec
	Radius   float64
	Color    core.Color
	Strategy Strategy
	Move     core.Vec // Displacement applied on the last accepted step
	Speed    float64
	Spawn    core.Vec

	Frightened   bool
	Scattering   bool
	ScatterTicks int
	Caged        bool
	ExitTimer    int

	exitY        float64
	minExit      int
	maxExit      int
	lookAhead    float64
	scatterLimit int
}

// NewGhost creates a caged ghost at its spawn point. The exit countdown is
// left at zero; callers draw it with Respawn.
func NewGhost(spawn core.Vec, color core.Color, s Strategy, p Params) *Ghost {
	return &Ghost{
		Pos:          spawn,
		Radius:       p.GhostRadius,
		Color:        color,
		Strategy:     s,
		Move:         core.V(1, 0),
		Speed:        p.GhostSpeed,
		Spawn:        spawn,
		Caged:        true,
		exitY:        p.ExitY,
		minExit:      p.MinExitTicks,
		maxExit:      p.MaxExitTicks,
		lookAhead:    p.InterceptDistance,
		scatterLimit: p.ScatterTicks,
	}
}

// Respawn sends the ghost home: back to spawn, calm, caged again with a
// fresh exit countdown.
func (g *Ghost) Respawn(rng Rand) {
	g.Pos = g.Spawn
	g.Move = core.Vec{}
	g.Frightened = false
	g.Scattering = false
	g.ScatterTicks = 0
	g.Caged = true
	g.ExitTimer = randBetween(rng, g.minExit, g.maxExit)
}

// Scatter switches the ghost to random wandering until the scatter
// duration elapses.
func (g *Ghost) Scatter() {
	g.Scattering = true
	g.ScatterTicks = 0
}

// Target returns the point the ghost steers toward this tick.
// While scattering a new random point is drawn on every call.
func (g *Ghost) Target(pl *Player, rng Rand, world Bounds) core.Vec {
	if g.Scattering {
		return core.V(
			float64(rng.Intn(int(world.W)+1)),
			float64(rng.Intn(int(world.H)+1)),
		)
	}

	switch g.Strategy {
	case StrategyIntercept:
		return pl.Pos.Add(pl.Dir.Delta().Scale(g.lookAhead))
	case StrategyPatrol:
		return core.V(
			math.Mod(pl.Pos.X+world.W/2, world.W),
			math.Mod(pl.Pos.Y+world.H/2, world.H),
		)
	default:
		return pl.Pos
	}
}

// Advance moves the ghost by one tick.
func (g *Ghost) Advance(pl *Player, m *Maze, rng Rand, b Bounds) {
	if g.Caged {
		g.leaveCage()
		return
	}

	target := g.Target(pl, rng, b)
	if g.Scattering {
		g.ScatterTicks++
		if g.ScatterTicks > g.scatterLimit {
			g.Scattering = false
			g.ScatterTicks = 0
		}
	}

	speed := g.Speed
	if g.Frightened {
		speed /= 2
	}

	delta := target.Sub(g.Pos)
	if dist := delta.Len(); dist != 0 {
		delta = delta.Scale(speed / dist)
	}

	if pos, ok := resolveStep(g.Pos, g.Pos.Add(delta), m, b); ok {
		g.Pos = pos
		g.Move = delta
	}
}

// leaveCage runs the countdown, then lifts the ghost to the exit line.
// The climb ignores walls.
func (g *Ghost) leaveCage() {
	if g.ExitTimer > 0 {
		g.ExitTimer--
		if g.ExitTimer > 0 {
			return
		}
	}
	if g.Pos.Y > g.exitY {
		g.Pos.Y -= g.Speed
		g.Move = core.V(0, -g.Speed)
		return
	}
	g.Caged = false
	g.Move = core.Vec{}
}
