package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyManager turns the running score or elapsed ticks into a ghost
// speed. The level climbs linearly from the initial level to 1 as the
// chosen metric approaches max_at.
type DifficultyManager struct {
	enabled bool
	metric  string
	span    float64 // metric value at which the level reaches 1
	floor   float64 // level at zero progress, in [0, 1]
	boost   float64 // speed fraction added at level 1
}

// NewDifficultyManager creates a manager from the difficulty section.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	span := float64(cfg.Progression.MaxAt)
	if span <= 0 {
		span = 1
	}
	return &DifficultyManager{
		enabled: cfg.Enabled && cfg.Progression.Type != ProgressionNone,
		metric:  cfg.Progression.Type,
		span:    span,
		floor:   unit(cfg.InitialLevel),
		boost:   cfg.Scaling.SpeedMultiplier,
	}
}

// IsEnabled reports whether speed progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.enabled
}

// Level returns the difficulty in [0, 1] for the given score and ticks.
// Without progression it stays at the initial level.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.enabled {
		return d.floor
	}

	var value float64
	switch d.metric {
	case ProgressionScore:
		value = float64(score)
	case ProgressionTime:
		value = float64(ticks)
	default:
		return d.floor
	}

	progress := unit(value / d.span)
	return d.floor + progress*(1-d.floor)
}

// Speed scales baseSpeed by the current level, reaching
// baseSpeed*(1+speed_multiplier) at level 1. Disabled progression returns
// baseSpeed unchanged, whatever the initial level.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	if !d.enabled {
		return baseSpeed
	}
	return baseSpeed * (1 + d.Level(score, ticks)*d.boost)
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
