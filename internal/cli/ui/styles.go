package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the shared lipgloss styles for agentctl output. Catalog
// rendering keeps its own styles next to the render functions; these are
// only the generic ones used across commands.
var Styles = struct {
	Bold     lipgloss.Style
	Accent   lipgloss.Style
	ErrorBox lipgloss.Style
}{
	Bold:   lipgloss.NewStyle().Bold(true),
	Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),

	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(0, 1).
		Width(64),
}
