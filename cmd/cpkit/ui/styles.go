// Package ui provides the terminal styling for cpkit reports.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Verdict colors, shared by both themes.
var (
	Pass = lipgloss.Color("#8BC34A")
	Fail = lipgloss.Color("#e53935")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Muted:      lipgloss.Color("#8a94a6"),
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#8BC34A"),
		Muted:      lipgloss.Color("#6b7a94"),
		IsDark:     true,
	}
}

// ThemeByName maps the ui.theme config value to a Theme. Unknown names get dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the styles a report renders with.
type Styles struct {
	Theme Theme

	Title   lipgloss.Style // table caption
	Header  lipgloss.Style // column names
	Cell    lipgloss.Style
	Rule    lipgloss.Style // column separators and the header underline
	Success lipgloss.Style // PASS
	Error   lipgloss.Style // FAIL
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme:   theme,
		Title:   lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(theme.Foreground).Bold(true),
		Cell:    lipgloss.NewStyle().Foreground(theme.Foreground),
		Rule:    lipgloss.NewStyle().Foreground(theme.Muted),
		Success: lipgloss.NewStyle().Foreground(Pass).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Fail).Bold(true),
	}
}

// PlainStyles renders without any color or emphasis (NO_COLOR, ui.color: false).
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:   plain,
		Header:  plain,
		Cell:    plain,
		Rule:    plain,
		Success: plain,
		Error:   plain,
	}
}

// Verdict renders PASS or FAIL.
func (s Styles) Verdict(ok bool) string {
	if ok {
		return s.Success.Render("PASS")
	}
	return s.Error.Render("FAIL")
}
