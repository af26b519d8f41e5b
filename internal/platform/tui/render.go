package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// palette holds the ANSI 256 foreground for each game color.
// ColorDefault has no entry and renders unstyled.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:    "9",
	core.ColorYellow: "11",
	core.ColorBlue:   "12",
	core.ColorWhite:  "15",
	core.ColorPink:   "218",
	core.ColorOrange: "208",
	core.ColorPurple: "135",
	core.ColorGray:   "245",
}

// styleFor returns the lipgloss style for a game color.
func styleFor(c core.Color) lipgloss.Style {
	fg, ok := palette[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(fg)
}

// colorRun is a horizontal stretch of cells sharing one color.
type colorRun struct {
	color core.Color
	text  string
}

// rowRuns splits row y of s into maximal same-color runs.
func rowRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	var text strings.Builder

	current := s.GetCell(0, y).Color
	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			runs = append(runs, colorRun{color: current, text: text.String()})
			text.Reset()
			current = cell.Color
		}
		text.WriteRune(cell.Rune)
	}
	if text.Len() > 0 {
		runs = append(runs, colorRun{color: current, text: text.String()})
	}
	return runs
}

// RenderScreen turns a Screen into a styled string, one escape sequence
// per color run rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range rowRuns(s, y) {
			if run.color == core.ColorDefault {
				sb.WriteString(run.text)
				continue
			}
			sb.WriteString(styleFor(run.color).Render(run.text))
		}
	}
	return sb.String()
}
