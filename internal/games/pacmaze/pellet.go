package pacmaze

import "github.com/vovakirdan/pacmaze/internal/core"

// Pellet radii.
const (
	PelletRadius      = 4.0
	PowerPelletRadius = 8.0
)

// Pellet grid: x in [150, 650), y in [150, 450), step 30.
const (
	gridMinX = 150
	gridMaxX = 650
	gridMinY = 150
	gridMaxY = 450
	gridStep = 30
)

// powerPelletLayout holds the four corner power pellets.
var powerPelletLayout = []core.Vec{
	{X: 130, Y: 130},
	{X: 670, Y: 130},
	{X: 130, Y: 470},
	{X: 670, Y: 470},
}

// Pellet is a collectible. Consumption clears Exists for the rest of the round.
type Pellet struct {
	Pos    core.Vec
	Radius float64
	Exists bool
	Power  bool
}

// ConsumeResult reports the outcome of a pickup attempt.
type ConsumeResult struct {
	Consumed bool
	Power    bool
}

// Overlaps is the circular proximity rule used for every pickup and capture:
// two circles touch when their centers are closer than the sum of radii.
func Overlaps(a core.Vec, ra float64, b core.Vec, rb float64) bool {
	return a.Dist(b) < ra+rb
}

// TryConsume consumes the pellet if an agent of the given radius at (x, y)
// overlaps it. Already consumed pellets are never consumed again.
func (p *Pellet) TryConsume(x, y, radius float64) ConsumeResult {
	if !p.Exists {
		return ConsumeResult{}
	}
	if !Overlaps(p.Pos, p.Radius, core.V(x, y), radius) {
		return ConsumeResult{}
	}
	p.Exists = false
	return ConsumeResult{Consumed: true, Power: p.Power}
}

// NewPellets builds the plain pellet grid, skipping cells inside walls,
// and the four power pellets.
func NewPellets(m *Maze) (plain, power []Pellet) {
	for x := gridMinX; x < gridMaxX; x += gridStep {
		for y := gridMinY; y < gridMaxY; y += gridStep {
			if m.Collides(float64(x), float64(y)) {
				continue
			}
			plain = append(plain, Pellet{
				Pos:    core.V(float64(x), float64(y)),
				Radius: PelletRadius,
				Exists: true,
			})
		}
	}

	power = make([]Pellet, 0, len(powerPelletLayout))
	for _, pos := range powerPelletLayout {
		power = append(power, Pellet{
			Pos:    pos,
			Radius: PowerPelletRadius,
			Exists: true,
			Power:  true,
		})
	}
	return plain, power
}

// countRemaining returns how many pellets still exist.
func countRemaining(ps []Pellet) int {
	n := 0
	for i := range ps {
		if ps[i].Exists {
			n++
		}
	}
	return n
}
