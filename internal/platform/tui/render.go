package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-knight/internal/core"
)

// ansiCodes maps core.Color to terminal color codes.
var ansiCodes = map[core.Color]string{
	core.ColorBlack:       "0",
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorGray:        "245",
	core.ColorDarkGray:    "236",
	core.ColorBrightRed:   "9",
	core.ColorBrightWhite: "15",
}

type colorPair struct {
	fg, bg core.Color
}

var styleCache = make(map[colorPair]lipgloss.Style)

// styleFor returns the style for a foreground and background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code, ok := ansiCodes[fg]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[bg]; ok {
		s = s.Background(lipgloss.Color(code))
	}
	styleCache[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
