package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pacmaze/internal/core"
)

func TestRowRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetColored(1, 0, 'a', core.ColorRed)
	s.SetColored(2, 0, 'b', core.ColorRed)
	s.SetColored(4, 0, 'c', core.ColorBlue)

	got := rowRuns(s, 0)
	want := []colorRun{
		{core.ColorDefault, " "},
		{core.ColorRed, "ab"},
		{core.ColorDefault, " "},
		{core.ColorBlue, "c"},
		{core.ColorDefault, " "},
	}

	if len(got) != len(want) {
		t.Fatalf("rowRuns() = %+v, expected %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestRowRunsEmptyScreen(t *testing.T) {
	s := core.NewScreen(0, 1)
	if runs := rowRuns(s, 0); len(runs) != 0 {
		t.Errorf("expected no runs, got %+v", runs)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := RenderScreen(s); got != "abc\nde " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "abc\nde ")
	}
}

func TestStyleForDefaultIsUnstyled(t *testing.T) {
	if got := styleFor(core.ColorDefault).Render("x"); got != lipgloss.NewStyle().Render("x") {
		t.Errorf("default color should render unstyled, got %q", got)
	}
	colors := []core.Color{
		core.ColorRed, core.ColorYellow, core.ColorBlue, core.ColorWhite,
		core.ColorPink, core.ColorOrange, core.ColorPurple, core.ColorGray,
	}
	for _, c := range colors {
		if _, ok := palette[c]; !ok {
			t.Errorf("missing palette entry for %v", c)
		}
	}
}
