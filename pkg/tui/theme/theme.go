// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/hush/pkg/profile"
)

// Theme groups the styles used across the UI pages.
type Theme struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Body     lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Panel    lipgloss.Style
	Crisis   lipgloss.Style

	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// For returns the palette for the stored visual mode.
func For(mode profile.Theme) Theme {
	accent := lipgloss.Color("105")
	subtle := lipgloss.Color("245")
	body := lipgloss.Color("252")
	if mode == profile.ThemeLight {
		accent = lipgloss.Color("63")
		subtle = lipgloss.Color("241")
		body = lipgloss.Color("236")
	}

	t := Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtle:   lipgloss.NewStyle().Foreground(subtle),
		Body:     lipgloss.NewStyle().Foreground(body),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Selected: lipgloss.NewStyle().Foreground(accent).Reverse(true),
		Tab:      lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1).Underline(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Crisis: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2),

		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
	return t
}
