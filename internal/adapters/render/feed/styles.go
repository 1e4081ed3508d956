package feed

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	author    lipgloss.Style
	handle    lipgloss.Style
	content   lipgloss.Style
	meta      lipgloss.Style
	liked     lipgloss.Style
	counter   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	fieldKey  lipgloss.Style
	fieldVal  lipgloss.Style
	following lipgloss.Style
	pending   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		handle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		content:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		liked:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		counter:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		fieldKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		fieldVal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		following: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		pending:   lipgloss.NewStyle().Faint(true),
	}
}
