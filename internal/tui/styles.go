package tui

import (
	"github.com/charmbracelet/lipgloss"

	"arena-portal-backend/internal/domain"
	"arena-portal-backend/internal/progress"
)

var (
	colorMuted = lipgloss.Color(progress.StateColor(domain.StatePending))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(progress.StateColor(domain.StateActive)))

	styleMeta = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDelivered = lipgloss.NewStyle().
			Foreground(lipgloss.Color(progress.StateColor(domain.StateCompleted))).
			Bold(true)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// stateStyle colors a row by its state; the active row is bold.
func stateStyle(state domain.StepState) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(progress.StateColor(state)))
	if state == domain.StateActive {
		s = s.Bold(true)
	}
	return s
}

func glyph(state domain.StepState) string {
	switch state {
	case domain.StateCompleted:
		return "✔"
	case domain.StateActive:
		return "●"
	default:
		return "○"
	}
}
