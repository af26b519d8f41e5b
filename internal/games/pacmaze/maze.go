package pacmaze

import "github.com/vovakirdan/pacmaze/internal/core"

// wallLayout is the fixed maze: outer frame, two horizontal bars above and
// below the center, the right pillar and the ghost house.
var wallLayout = []core.Box{
	{X: 100, Y: 100, W: 600, H: 20},
	{X: 100, Y: 100, W: 20, H: 400},
	{X: 100, Y: 500, W: 600, H: 20},
	{X: 700, Y: 100, W: 20, H: 400},
	{X: 150, Y: 200, W: 200, H: 20},
	{X: 450, Y: 200, W: 200, H: 20},
	{X: 150, Y: 400, W: 200, H: 20},
	{X: 450, Y: 400, W: 200, H: 20},
	{X: 530, Y: 250, W: 20, H: 120},
	{X: 350, Y: 250, W: 20, H: 100},
	{X: 430, Y: 250, W: 20, H: 100},
	{X: 350, Y: 350, W: 100, H: 20},
}

// Maze is the immutable set of wall segments.
type Maze struct {
	walls []core.Box
}

// NewMaze builds the fixed maze layout.
func NewMaze() *Maze {
	walls := make([]core.Box, len(wallLayout))
	copy(walls, wallLayout)
	return &Maze{walls: walls}
}

// Walls returns a copy of the wall segments.
func (m *Maze) Walls() []core.Box {
	out := make([]core.Box, len(m.walls))
	copy(out, m.walls)
	return out
}

// Collides reports whether the point lies inside any wall.
func (m *Maze) Collides(x, y float64) bool {
	for _, w := range m.walls {
		if w.Contains(x, y) {
			return true
		}
	}
	return false
}

// resolveStep applies the shared movement rule for every agent: a step whose
// destination is inside a wall is rejected as a whole, otherwise the
// destination is clamped into the world per axis.
func resolveStep(from, to core.Vec, m *Maze, b Bounds) (core.Vec, bool) {
	if m.Collides(to.X, to.Y) {
		return from, false
	}
	return b.Clamp(to), true
}
