package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Styles struct {
	Prefix    func(string) string
	Title     func(string) string
	Secondary func(string) string
}

// NewStyles binds styles to w. Writers that are not terminals get plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	prefix := r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	title := r.NewStyle().Foreground(lipgloss.Color("252"))
	secondary := r.NewStyle().Foreground(lipgloss.Color("245"))
	return Styles{
		Prefix:    func(s string) string { return prefix.Render(s) },
		Title:     func(s string) string { return title.Render(s) },
		Secondary: func(s string) string { return secondary.Render(s) },
	}
}

// PlainStyles renders everything unchanged.
func PlainStyles() Styles {
	same := func(s string) string { return s }
	return Styles{Prefix: same, Title: same, Secondary: same}
}
