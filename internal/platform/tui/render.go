package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/platy/tag-sim/internal/core"
	"github.com/platy/tag-sim/internal/viewer"
)

// Styles for the frame marks.
var (
	itStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	runnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// The it mark is highlighted, runners are dimmer, everything else is chrome.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); x++ {
			r := s.Get(x, y)
			switch r {
			case viewer.MarkIt:
				sb.WriteString(itStyle.Render(string(r)))
			case viewer.MarkRunner:
				sb.WriteString(runnerStyle.Render(string(r)))
			case '─', '│', '┌', '┐', '└', '┘':
				sb.WriteString(frameStyle.Render(string(r)))
			default:
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
