package pacmaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pacmaze/internal/core"
)

func TestNewPellets_Layout(t *testing.T) {
	m := NewMaze()
	plain, power := NewPellets(m)

	// 17 x 10 grid minus 24 cells covered by walls.
	require.Len(t, plain, 146)
	for _, p := range plain {
		assert.False(t, m.Collides(p.Pos.X, p.Pos.Y), "pellet inside wall at %v", p.Pos)
		assert.True(t, p.Exists)
		assert.False(t, p.Power)
		assert.Equal(t, PelletRadius, p.Radius)
	}

	require.Len(t, power, 4)
	for i, p := range power {
		assert.Equal(t, powerPelletLayout[i], p.Pos)
		assert.True(t, p.Exists)
		assert.True(t, p.Power)
		assert.Equal(t, PowerPelletRadius, p.Radius)
	}
}

func TestPellet_TryConsumeIsIdempotent(t *testing.T) {
	p := Pellet{Pos: core.V(150, 150), Radius: PelletRadius, Exists: true}

	first := p.TryConsume(150, 150, 15)
	assert.Equal(t, ConsumeResult{Consumed: true}, first)
	assert.False(t, p.Exists)

	second := p.TryConsume(150, 150, 15)
	assert.Equal(t, ConsumeResult{}, second)
	assert.False(t, p.Exists)
}

func TestPellet_TryConsumeNeedsStrictOverlap(t *testing.T) {
	p := Pellet{Pos: core.V(150, 150), Radius: PelletRadius, Exists: true}

	assert.False(t, p.TryConsume(169, 150, 15).Consumed, "touching circles do not overlap")
	assert.True(t, p.Exists)

	assert.True(t, p.TryConsume(168.9, 150, 15).Consumed)
}

func TestPellet_TryConsumeReportsPower(t *testing.T) {
	p := Pellet{Pos: core.V(130, 130), Radius: PowerPelletRadius, Exists: true, Power: true}
	res := p.TryConsume(124, 120, 15)
	assert.Equal(t, ConsumeResult{Consumed: true, Power: true}, res)
}

func TestOverlaps(t *testing.T) {
	a := core.V(0, 0)
	assert.True(t, Overlaps(a, 15, core.V(29.9, 0), 15))
	assert.False(t, Overlaps(a, 15, core.V(30, 0), 15))
	assert.False(t, Overlaps(a, 15, core.V(30, 30), 15))
}
