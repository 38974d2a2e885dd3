// Package style composes lipgloss styles for command output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/odyssey-club/aiosource/color"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded banner in the club's colors.
var Title = func(s string) string {
	return Colored(color.New("230"), color.Teal).Bold(true).Padding(0, 1).Render(s)
}
