package terminal

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	status   lipgloss.Style
	shape    lipgloss.Style
	empty    lipgloss.Style
	score    lipgloss.Style
	comment  lipgloss.Style
	alert    lipgloss.Style
	gameOver lipgloss.Style
	controls lipgloss.Style
	prompt   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		status:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		shape:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:    lipgloss.NewStyle().Faint(true),
		score:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		comment:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		alert:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		gameOver: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220")).Padding(0, 1),
		controls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
	}
}
