package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacmaze/internal/games/pacmaze"
	"github.com/vovakirdan/pacmaze/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the high scores",
	Long: `Display the top high scores and round statistics.

Examples:
  pacmaze scores
  pacmaze scores --limit 25
  pacmaze scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores and rounds")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - PacMaze")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pacmaze play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, statsErr := store.GetGameStats(gameID); statsErr == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	if counts, countErr := store.OutcomeCounts(gameID); countErr == nil {
		fmt.Printf("Victories: %d  Game overs: %d\n", counts[pacmaze.OutcomeVictory.String()], counts[pacmaze.OutcomeGameOver.String()])
	}
	return nil
}
