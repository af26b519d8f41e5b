package pacmaze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pacmaze/internal/core"
)

func singlePelletRound(t *testing.T, at core.Vec) *Round {
	t.Helper()
	r := newQuietRound(t)
	for i := range r.Pellets {
		r.Pellets[i].Exists = false
	}
	for i := range r.PowerPellets {
		r.PowerPellets[i].Exists = false
	}
	r.Pellets[0] = Pellet{Pos: at, Radius: PelletRadius, Exists: true}
	return r
}

func TestAutopilot_HeadsForNearestPellet(t *testing.T) {
	r := singlePelletRound(t, core.V(400, 160))
	r.Player.Pos = core.V(250, 160)

	assert.Equal(t, DirRight, NewAutopilot().Next(r))
}

func TestAutopilot_FleesNearbyGhost(t *testing.T) {
	r := singlePelletRound(t, core.V(400, 160))
	r.Player.Pos = core.V(250, 160)
	activate(r.Ghosts[0], 290, 160)

	assert.Equal(t, DirLeft, NewAutopilot().Next(r))

	r.Player.PowerUp()
	assert.Equal(t, DirRight, NewAutopilot().Next(r), "powered pilot ignores ghosts")
}

func TestAutopilot_AvoidsWalls(t *testing.T) {
	r := singlePelletRound(t, core.V(400, 60))
	r.Player.Pos = core.V(250, 122)

	// Straight up is blocked by the top frame.
	assert.NotEqual(t, DirUp, NewAutopilot().Next(r))
}
