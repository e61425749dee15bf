package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// PreviewTheme contains the visual styles for static scene previews.
type PreviewTheme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Frame  lipgloss.Style
	Border lipgloss.Style
	Dim    lipgloss.Style
}

// DefaultPreviewTheme returns the default preview styles.
func DefaultPreviewTheme() PreviewTheme {
	return PreviewTheme{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Frame:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
