package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#F2A900", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	heading  lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
	star     lipgloss.Style
	dim      lipgloss.Style
	focused  lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	pane     lipgloss.Style
}

// NewPalette builds the stylesheet from the title, success, error, warning and help colors.
func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:    NewBold(t).MarginBottom(1),
		heading:  NewBold(t),
		ok:       NewBold(s),
		err:      NewBold(e),
		warn:     NewStyle(w),
		help:     NewEm(h),
		star:     NewStyle(t),
		dim:      NewStyle(h),
		focused:  NewBold(t).Underline(true),
		card:     lipgloss.NewStyle().PaddingLeft(2).BorderStyle(lipgloss.HiddenBorder()).BorderLeft(true),
		selected: lipgloss.NewStyle().PaddingLeft(2).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(lipgloss.Color(t)),
		pane:     lipgloss.NewStyle().Padding(0, 1).MarginBottom(1),
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
