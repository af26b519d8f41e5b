package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pacmaze/internal/platform/tui"
	"github.com/vovakirdan/pacmaze/internal/registry"
	"github.com/vovakirdan/pacmaze/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores and recent rounds",
	Long: `Open the interactive scoreboard.

Controls:
  Up/Down  - Scroll
  Tab      - Switch between high scores and recent rounds
  Esc/B    - Back
  Q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}
	return tui.RunScoreboard(store, gameID, title, width, height)
}
