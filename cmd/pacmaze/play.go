package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacmaze"
	"github.com/vovakirdan/pacmaze/internal/platform/tui"
	"github.com/vovakirdan/pacmaze/internal/registry"
	"github.com/vovakirdan/pacmaze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play PacMaze in this terminal",
	Long: `Start a round of PacMaze.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  Space/R      - Restart (after the round ends)
  Ctrl+S       - Save a screenshot
  B            - Back out
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five lives, longer power pellets
  normal - Ghosts speed up as you score
  hard   - Two lives, short power pellets, fast ghosts
  fixed  - No progression, stays at config's initial level

Examples:
  pacmaze play
  pacmaze play --difficulty easy
  pacmaze play --config ./my-pacmaze.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(true)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	pacmaze.SetConfigPath(flagConfig)
	pacmaze.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if g, ok := game.(*pacmaze.Game); ok && g.ConfigErr() != nil {
		fmt.Fprintf(os.Stderr, "Warning: config not loaded, defaults used: %v\n", g.ConfigErr())
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
