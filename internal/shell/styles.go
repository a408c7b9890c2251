package shell

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	info    lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style

	// placeholder is the text field's own style, restored after a warning.
	placeholder lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0080FF")),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		info:    lipgloss.NewStyle(),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
	}
}
