// pacmaze is a maze chase game for the terminal: eat every pellet, dodge four
// ghosts, and turn the tables with power pellets.
//
// Usage:
//
//	pacmaze play            - Play in this terminal
//	pacmaze serve           - Start SSH server for remote play
//	pacmaze scores          - Print the high scores
//	pacmaze board           - Interactive scoreboard
//	pacmaze sim             - Headless deterministic run
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.pacmaze/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacmaze/internal/config"
	// Import the game to register it
	_ "github.com/vovakirdan/pacmaze/internal/games/pacmaze"
)

const gameID = "pacmaze"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// env supplies flag defaults from PACMAZE_* variables and .env.
var env = config.LoadEnv()

// logFile is the open --log-file, closed after the command runs.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacmaze",
	Short: "PacMaze - a maze chase in your terminal",
	Long: `PacMaze is a terminal maze chase. Clear every pellet while four ghosts
hunt you down; power pellets let you eat them for a while.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Print the high scores
  board    - Interactive scoreboard
  sim      - Headless deterministic run

Examples:
  pacmaze play
  pacmaze play --difficulty hard
  pacmaze serve --ssh :2222
  pacmaze sim --seed 42 --ticks 5000 --autopilot`,
	SilenceUsage: true,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	dbPath := env.DBPath
	if dbPath == "" {
		dbPath = "~/.pacmaze/scores.db"
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dbPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. When interactive is set and no log
// file was given, output is discarded so the alt screen stays clean.
func newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		logFile = f
		out = f
	case interactive:
		out = io.Discard
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacmaze",
		Level:           level,
	}), nil
}
