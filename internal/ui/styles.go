package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/curvedit/internal/status"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008B8B", Dark: "#7FFFD4"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"})

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#006400", Dark: "#90EE90"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

func toneStyle(t status.Tone) lipgloss.Style {
	switch t {
	case status.ToneError:
		return errorStyle
	case status.ToneInfo:
		return infoStyle
	default:
		return hintStyle
	}
}
