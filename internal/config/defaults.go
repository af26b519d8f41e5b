package config

import (
	_ "embed"
)

//go:embed defaults/pacmaze.yaml
var defaultPacmazeYAML []byte

// DefaultPacmazeConfig returns the built-in configuration.
// Mirrors defaults/pacmaze.yaml and is used when the embedded file cannot be parsed.
func DefaultPacmazeConfig() PacmazeConfig {
	return PacmazeConfig{
		Player: PlayerConfig{
			Speed:       4,
			Radius:      15,
			Lives:       3,
			StartX:      120,
			StartY:      120,
			ChompPeriod: 10,
		},
		Ghosts: GhostConfig{
			Speed:             3,
			Radius:            15,
			ExitY:             250,
			MinExitTicks:      30,
			MaxExitTicks:      180,
			InterceptDistance: 100,
			ScatterTicks:      180,
		},
		Power: PowerConfig{
			DurationTicks: 300,
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPellet: 50,
			Ghost:       200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `pacmaze config dump`.
func DefaultYAML() []byte {
	return defaultPacmazeYAML
}
