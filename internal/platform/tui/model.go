package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/registry"
	"github.com/vovakirdan/pacmaze/internal/storage"
)

// Outcome labels stored with finished rounds.
const (
	OutcomeVictory  = "victory"
	OutcomeGameOver = "game_over"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	keys        *KeyMapper
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the current terminal round has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.WithDefaults()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game must already be Reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) || m.inputFrame.Has(core.ActionBack) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.resultSaved = false
	} else if !m.resultSaved {
		m.recordResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the score and round record of a finished round.
// Storage failures are logged and do not interrupt play.
func (m *Model) recordResult() {
	st := m.gameState
	outcome := OutcomeGameOver
	if st.Won {
		outcome = OutcomeVictory
	}

	m.logger.Info("round finished",
		"game", m.game.ID(),
		"outcome", outcome,
		"score", st.Score,
		"lives", st.Lives,
		"ticks", st.Ticks,
	)

	if m.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	_, err := m.store.SaveRound(storage.RoundRecord{
		GameID:  m.game.ID(),
		Outcome: outcome,
		Score:   st.Score,
		Lives:   st.Lives,
		Ticks:   st.Ticks,
		Seed:    m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".pacmaze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)
	game.Reset(model.config)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
