package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const pacmazeFile = "pacmaze.yaml"

// LoadPacmaze loads the maze chase configuration.
// Search order: customPath -> ~/.pacmaze/configs/pacmaze.yaml -> ./configs/pacmaze.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial override only needs the
// keys it changes.
func LoadPacmaze(customPath string) (PacmazeConfig, error) {
	cfg := DefaultPacmazeConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(pacmazeFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", pacmazeFile)); ok {
		return loaded, nil
	}

	embedded := DefaultPacmazeConfig()
	if err := yaml.Unmarshal(defaultPacmazeYAML, &embedded); err != nil {
		return DefaultPacmazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing, malformed or invalid
// files are skipped so the next source in the search order is used.
func tryLoad(path string) (PacmazeConfig, bool) {
	cfg := DefaultPacmazeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacmaze", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c PacmazeConfig) Validate() error {
	switch {
	case c.Player.Speed <= 0:
		return fmt.Errorf("config: player.speed must be positive, got %v", c.Player.Speed)
	case c.Player.Radius <= 0:
		return fmt.Errorf("config: player.radius must be positive, got %v", c.Player.Radius)
	case c.Player.Lives <= 0:
		return fmt.Errorf("config: player.lives must be positive, got %d", c.Player.Lives)
	case c.Player.ChompPeriod <= 0:
		return fmt.Errorf("config: player.chomp_period must be positive, got %d", c.Player.ChompPeriod)
	case c.Ghosts.Speed <= 0:
		return fmt.Errorf("config: ghosts.speed must be positive, got %v", c.Ghosts.Speed)
	case c.Ghosts.Radius <= 0:
		return fmt.Errorf("config: ghosts.radius must be positive, got %v", c.Ghosts.Radius)
	case c.Ghosts.MinExitTicks < 0 || c.Ghosts.MaxExitTicks < c.Ghosts.MinExitTicks:
		return fmt.Errorf("config: ghosts exit ticks range [%d, %d] is invalid",
			c.Ghosts.MinExitTicks, c.Ghosts.MaxExitTicks)
	case c.Power.DurationTicks <= 0:
		return fmt.Errorf("config: power.duration_ticks must be positive, got %d", c.Power.DurationTicks)
	}

	switch c.Difficulty.Progression.Type {
	case ProgressionScore, ProgressionTime, ProgressionNone, "":
	default:
		return fmt.Errorf("config: difficulty.progression.type %q is not score, time or none",
			c.Difficulty.Progression.Type)
	}
	return nil
}

// ApplyPacmazePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPacmazePreset(cfg *PacmazeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Power.DurationTicks = 450
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Power.DurationTicks = 200
	}
}
