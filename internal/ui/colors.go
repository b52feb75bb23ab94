// package ui provides lipgloss styling for terminal output
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = NewPalette("#1DB954", "#04B575", "#FF5F56", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	dim   lipgloss.Style
}

func NewPalette(t, s, e, w, d string) *Palette {
	return &Palette{
		title: NewBold(t),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		dim:   NewEm(d),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Title renders header text.
func Title(s string) string { return palette.title.Render(s) }

// OK renders success text.
func OK(s string) string { return palette.ok.Render(s) }

// Err renders failure text.
func Err(s string) string { return palette.err.Render(s) }

// Warn renders caution text.
func Warn(s string) string { return palette.warn.Render(s) }

// Dim renders supplementary text.
func Dim(s string) string { return palette.dim.Render(s) }
