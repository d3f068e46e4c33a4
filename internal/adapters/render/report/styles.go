package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	cell    lipgloss.Style
	marked  lipgloss.Style
	winner  lipgloss.Style
	loser   lipgloss.Style
	warning lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		cell:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		marked:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		winner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		loser:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
