package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pacmaze/internal/storage"
)

func openBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardShowsScoresAndSummary(t *testing.T) {
	store := openBoardStore(t)
	for _, s := range []int{120, 340} {
		if _, err := store.SaveScore("pacmaze", s); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}
	rounds := []storage.RoundRecord{
		{GameID: "pacmaze", Outcome: OutcomeVictory, Score: 340, Lives: 2, Ticks: 900},
		{GameID: "pacmaze", Outcome: OutcomeGameOver, Score: 120, Ticks: 400},
		{GameID: "pacmaze", Outcome: OutcomeGameOver, Score: 0, Ticks: 100},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() error: %v", err)
		}
	}

	m := NewScoreboardModel(store, "pacmaze", "PacMaze", 80, 30)
	view := m.View()

	if !strings.Contains(view, "HIGH SCORES - PacMaze") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "Rounds: 3  Won: 1  Lost: 2") {
		t.Errorf("view missing outcome summary:\n%s", view)
	}
	if !strings.Contains(view, "340") {
		t.Errorf("view missing top score:\n%s", view)
	}
}

func TestScoreboardSwitchesToRounds(t *testing.T) {
	store := openBoardStore(t)
	if _, err := store.SaveRound(storage.RoundRecord{GameID: "pacmaze", Outcome: OutcomeVictory, Score: 50}); err != nil {
		t.Fatalf("SaveRound() error: %v", err)
	}

	m := NewScoreboardModel(store, "pacmaze", "PacMaze", 80, 30)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)

	view := m.View()
	if !strings.Contains(view, "RECENT ROUNDS") {
		t.Errorf("expected rounds view after tab:\n%s", view)
	}
	if !strings.Contains(view, OutcomeVictory) {
		t.Errorf("rounds view missing outcome:\n%s", view)
	}
}

func TestScoreboardEmptyAndNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, "pacmaze", "PacMaze", 80, 30)
	view := m.View()
	if !strings.Contains(view, "Nothing recorded yet.") {
		t.Errorf("expected empty message:\n%s", view)
	}
	if !strings.Contains(view, "Rounds: 0  Won: 0  Lost: 0") {
		t.Errorf("expected zero summary:\n%s", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b goes back", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, true, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, "pacmaze", "PacMaze", 80, 30)
			updated, cmd := m.Update(tc.msg)
			m = updated.(ScoreboardModel)

			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if m.IsGoingBack() != tc.back {
				t.Errorf("IsGoingBack() = %v, expected %v", m.IsGoingBack(), tc.back)
			}
			if m.IsQuitting() != tc.quitting {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tc.quitting)
			}
			if m.View() != "" {
				t.Error("View() should be empty after leaving")
			}
		})
	}
}
