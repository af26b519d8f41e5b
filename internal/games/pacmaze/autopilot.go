package pacmaze

import (
	"math"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// Autopilot picks a direction for headless runs: the open step that brings
// the player closest to the nearest remaining pellet, or furthest from the
// nearest active ghost when one is within danger range and power is off.
type Autopilot struct {
	// Danger is the ghost distance below which the pilot flees.
	Danger float64
}

// NewAutopilot returns a pilot with the default danger range.
func NewAutopilot() *Autopilot {
	return &Autopilot{Danger: 60}
}

var pilotOrder = []Direction{DirLeft, DirRight, DirUp, DirDown}

// Next chooses the intent for the coming tick.
func (a *Autopilot) Next(r *Round) Direction {
	p := r.Player

	if !p.Powered {
		if ghost, ok := nearestGhost(r); ok && ghost.Dist(p.Pos) < a.Danger {
			return a.best(r, func(v core.Vec) float64 { return -v.Dist(ghost) })
		}
	}

	target, ok := nearestPellet(r)
	if !ok {
		return p.Dir
	}
	return a.best(r, func(v core.Vec) float64 { return v.Dist(target) })
}

// best returns the open direction with the lowest cost. Ties favor the
// current heading.
func (a *Autopilot) best(r *Round, cost func(core.Vec) float64) Direction {
	p := r.Player
	chosen := DirNone
	bestCost := math.Inf(1)

	for _, d := range pilotOrder {
		next := p.Pos.Add(d.Delta().Scale(r.params.PlayerSpeed))
		if r.Maze.Collides(next.X, next.Y) {
			continue
		}
		c := cost(next)
		if d == p.Dir {
			c -= 1e-6
		}
		if c < bestCost {
			bestCost = c
			chosen = d
		}
	}
	if chosen == DirNone {
		return p.Dir
	}
	return chosen
}

func nearestPellet(r *Round) (core.Vec, bool) {
	var best core.Vec
	found := false
	bestDist := math.Inf(1)
	for _, pool := range [][]Pellet{r.PowerPellets, r.Pellets} {
		for _, pl := range pool {
			if !pl.Exists {
				continue
			}
			if d := pl.Pos.Dist(r.Player.Pos); d < bestDist {
				bestDist = d
				best = pl.Pos
				found = true
			}
		}
	}
	return best, found
}

func nearestGhost(r *Round) (core.Vec, bool) {
	var best core.Vec
	found := false
	bestDist := math.Inf(1)
	for _, g := range r.Ghosts {
		if g.Caged {
			continue
		}
		if d := g.Pos.Dist(r.Player.Pos); d < bestDist {
			bestDist = d
			best = g.Pos
			found = true
		}
	}
	return best, found
}
