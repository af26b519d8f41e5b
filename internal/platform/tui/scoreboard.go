package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pacmaze/internal/storage"
)

// Scoreboard limits
const (
	maxScores = 100 // Max scores to load
	maxRounds = 50  // Max recent rounds to load
)

// boardView selects which table the scoreboard shows.
type boardView int

const (
	viewScores boardView = iota
	viewRounds
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "scores/rounds"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
// It shows the top scores and the recent rounds of one game.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	view      boardView
	scores    []storage.ScoreEntry
	rounds    []storage.RoundRecord
	outcomes  map[string]int
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads scores, rounds and outcome counts from the store.
func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}

	scores, err := m.store.TopScores(m.gameID, maxScores)
	if err != nil {
		m.loadErr = err
		return
	}
	rounds, err := m.store.RecentRounds(m.gameID, maxRounds)
	if err != nil {
		m.loadErr = err
		return
	}
	outcomes, err := m.store.OutcomeCounts(m.gameID)
	if err != nil {
		m.loadErr = err
		return
	}

	m.scores = scores
	m.rounds = rounds
	m.outcomes = outcomes
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewRounds:
		columns = []table.Column{
			{Title: "Outcome", Width: 10},
			{Title: "Score", Width: 8},
			{Title: "Lives", Width: 6},
			{Title: "Ticks", Width: 8},
			{Title: "Date", Width: 14},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: 20},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded data.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewRounds:
		rows = make([]table.Row, len(m.rounds))
		for i, r := range m.rounds {
			rows[i] = table.Row{
				r.Outcome,
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Lives),
				fmt.Sprintf("%d", r.Ticks),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	default:
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewScores {
				m.view = viewRounds
			} else {
				m.view = viewScores
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	heading := "HIGH SCORES"
	if m.view == viewRounds {
		heading = "RECENT ROUNDS"
	}
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("%s - %s", heading, m.title), m.width)))
	b.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summaryStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary returns the outcome totals line.
func (m ScoreboardModel) summary() string {
	if m.loadErr != nil {
		return fmt.Sprintf("could not load results: %v", m.loadErr)
	}
	won := m.outcomes[OutcomeVictory]
	lost := m.outcomes[OutcomeGameOver]
	return fmt.Sprintf("Rounds: %d  Won: %d  Lost: %d", won+lost, won, lost)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.scores) == 0
	if m.view == viewRounds {
		empty = len(m.rounds) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nPlay a round to fill the board!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user pressed back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
