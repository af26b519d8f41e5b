// Package pacmaze implements a maze chase: the player collects pellets
// while four ghosts with distinct pursuit strategies hunt it down.
//
// Round holds the whole simulation and advances one fixed tick per Step.
// Game adapts a Round to the platform registry contract.
package pacmaze

import (
	"github.com/vovakirdan/pacmaze/internal/config"
	"github.com/vovakirdan/pacmaze/internal/core"
)

// World dimensions in simulation units.
const (
	WorldW = 800.0
	WorldH = 600.0
)

// Params holds the tuning numbers of a round.
// The maze layout and pellet positions are fixed and not part of Params.
type Params struct {
	PlayerStart  core.Vec
	PlayerSpeed  float64
	PlayerRadius float64
	Lives        int
	ChompPeriod  int

	// RespawnPoint is where the player reappears after losing a life.
	RespawnPoint core.Vec

	GhostSpeed        float64
	GhostRadius       float64
	ExitY             float64
	MinExitTicks      int
	MaxExitTicks      int
	InterceptDistance float64
	ScatterTicks      int

	PowerTicks int

	PelletPoints      int
	PowerPelletPoints int
	GhostPoints       int
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultPacmazeConfig())
}

// ParamsFromConfig derives round parameters from a loaded configuration.
func ParamsFromConfig(cfg config.PacmazeConfig) Params {
	return Params{
		PlayerStart:       core.V(cfg.Player.StartX, cfg.Player.StartY),
		PlayerSpeed:       cfg.Player.Speed,
		PlayerRadius:      cfg.Player.Radius,
		Lives:             cfg.Player.Lives,
		ChompPeriod:       cfg.Player.ChompPeriod,
		RespawnPoint:      core.V(WorldW/2, WorldH/2),
		GhostSpeed:        cfg.Ghosts.Speed,
		GhostRadius:       cfg.Ghosts.Radius,
		ExitY:             cfg.Ghosts.ExitY,
		MinExitTicks:      cfg.Ghosts.MinExitTicks,
		MaxExitTicks:      cfg.Ghosts.MaxExitTicks,
		InterceptDistance: cfg.Ghosts.InterceptDistance,
		ScatterTicks:      cfg.Ghosts.ScatterTicks,
		PowerTicks:        cfg.Power.DurationTicks,
		PelletPoints:      cfg.Scoring.Pellet,
		PowerPelletPoints: cfg.Scoring.PowerPellet,
		GhostPoints:       cfg.Scoring.Ghost,
	}
}

// Bounds is the playable world rectangle [0, W] x [0, H].
type Bounds struct {
	W, H float64
}

// WorldBounds returns the bounds of the standard world.
func WorldBounds() Bounds {
	return Bounds{W: WorldW, H: WorldH}
}

// Clamp pulls each axis of v into the bounds independently.
func (b Bounds) Clamp(v core.Vec) core.Vec {
	return core.V(core.ClampF(v.X, 0, b.W), core.ClampF(v.Y, 0, b.H))
}

// Contains reports whether v lies inside the closed bounds.
func (b Bounds) Contains(v core.Vec) bool {
	return v.X >= 0 && v.X <= b.W && v.Y >= 0 && v.Y <= b.H
}
