package pacmaze

import (
	"math/rand"

	"github.com/vovakirdan/pacmaze/internal/config"
	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Round to the registry.Game contract.
type Game struct {
	round  *Round
	params Params
	rng    *rand.Rand

	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	paused     bool

	// configErr holds the error from the last config load, if any.
	// The game falls back to defaults when it is set.
	configErr error
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pacmaze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "PacMaze"
}

// Reset loads the configuration and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPacmaze(configPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultPacmazeConfig()
	}
	config.ApplyPacmazePreset(&cfg, difficultyPreset)

	g.params = ParamsFromConfig(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic gameplay
	g.newRound()
}

// ConfigErr returns the error from the last config load, or nil.
func (g *Game) ConfigErr() error {
	return g.configErr
}

func (g *Game) newRound() {
	g.round = NewRound(g.params, g.rng)
	g.paused = false
}

// Round exposes the active round.
func (g *Game) Round() *Round {
	return g.round
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	terminal := g.round.Outcome() != OutcomeNone

	if in.Has(core.ActionRestart) && terminal {
		g.newRound()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !terminal {
		g.paused = !g.paused
	}

	if g.paused || terminal {
		return core.StepResult{State: g.State()}
	}

	if d := directionFor(in.Last); d != DirNone {
		g.round.SetIntent(d)
	}

	if g.difficulty.IsEnabled() {
		g.round.SetGhostSpeed(g.difficulty.Speed(g.params.GhostSpeed, g.round.Player.Score, g.round.Tick()))
	}

	g.round.Step()
	return core.StepResult{State: g.State()}
}

// directionFor maps a platform action to a movement direction.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	default:
		return DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	outcome := g.round.Outcome()
	return core.GameState{
		Score:    g.round.Player.Score,
		Lives:    g.round.Player.Lives,
		GameOver: outcome != OutcomeNone,
		Won:      outcome == OutcomeVictory,
		Paused:   g.paused,
		Ticks:    g.round.Tick(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("pacmaze", func() registry.Game {
		return New()
	})
}
