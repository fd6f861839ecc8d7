package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const logo = "▞▀▖▞▀▖▛▀▖▛▀▖▛▀▘▞▀▖▛▀▖▙▗▌\n▌  ▙▄▌▙▄▘▌ ▌▙▄ ▌ ▌▙▄▘▌▘▌\n▝▀▘▘ ▘▘ ▘▀▀ ▘  ▝▀ ▘ ▘▘ ▘"

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/magenta color
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := HeaderPaddingStyle.Width(width)

	logoRendered := logoStyle.Render(logo)
	if title == "" {
		return headerPadding.Render(lipgloss.NewStyle().
			Width(width - 2). // -2 for padding
			Align(lipgloss.Right).
			Render(logoRendered))
	}

	// Title sits on the last logo line
	titleRendered := titleStyle.Render("\n\n" + title)
	gap := width - 2 - lipgloss.Width(titleRendered) - lipgloss.Width(logoRendered)
	if gap < 1 {
		gap = 1
	}
	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	))
}
