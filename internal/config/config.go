// Package config provides YAML-based game configuration loading and
// difficulty management for PacMaze.
package config

// PacmazeConfig contains all tunable numbers of the maze chase.
// The maze layout itself is fixed in code and is not configurable.
type PacmazeConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Ghosts     GhostConfig      `yaml:"ghosts"`
	Power      PowerConfig      `yaml:"power"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's movement and starting values.
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	Lives       int     `yaml:"lives"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	ChompPeriod int     `yaml:"chomp_period"` // Ticks between mouth toggles
}

// GhostConfig defines ghost movement and mode timings.
type GhostConfig struct {
	Speed             float64 `yaml:"speed"`
	Radius            float64 `yaml:"radius"`
	ExitY             float64 `yaml:"exit_y"`         // Ordinate a leaving ghost must reach
	MinExitTicks      int     `yaml:"min_exit_ticks"` // Cage countdown lower bound (inclusive)
	MaxExitTicks      int     `yaml:"max_exit_ticks"` // Cage countdown upper bound (inclusive)
	InterceptDistance float64 `yaml:"intercept_distance"`
	ScatterTicks      int     `yaml:"scatter_ticks"`
}

// PowerConfig defines power pellet effects.
type PowerConfig struct {
	DurationTicks int `yaml:"duration_ticks"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Ghost       int `yaml:"ghost"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ghost speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
