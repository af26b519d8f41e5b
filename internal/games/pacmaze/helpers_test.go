package pacmaze

import (
	"math/rand"
	"testing"
)

// scriptedRand replays a fixed sequence of draws, cycling when exhausted.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// newQuietRound builds a seeded round whose ghosts stay caged indefinitely.
func newQuietRound(t *testing.T) *Round {
	t.Helper()
	r := NewRound(DefaultParams(), rand.New(rand.NewSource(1)))
	for _, g := range r.Ghosts {
		g.ExitTimer = 1 << 30
	}
	return r
}

// activate releases a ghost at the given position.
func activate(g *Ghost, x, y float64) {
	g.Caged = false
	g.ExitTimer = 0
	g.Pos.X, g.Pos.Y = x, y
}
