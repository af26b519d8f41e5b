package core

// Platform defaults used when a RuntimeConfig leaves a field unset.
const (
	DefaultTickRate = 30
	DefaultScreenW  = 80
	DefaultScreenH  = 24
)

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size, the tick rate and the RNG seed. Seed 0 asks the platform for a
// time-based seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int // Ticks per second
	Seed     int64
}

// DefaultConfig returns an 80x24 runtime at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults fills non-positive size and rate fields from DefaultConfig.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int
	Lives    int
	GameOver bool // Round ended, won or lost
	Won      bool
	Paused   bool
	Ticks    int // Ticks elapsed in the current round
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
