package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/focusdeck/internal/dashboard"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
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

// widgetChrome returns the bordered box style for a widget panel under the
// given dashboard style. The focused panel gets a thick border.
func widgetChrome(s dashboard.Style, focused bool) lipgloss.Style {
	base := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if focused {
		base = base.Border(lipgloss.ThickBorder())
	}

	switch s {
	case dashboard.StyleBlackLowOpacity:
		return base.Background(lipgloss.Color("#1a1a1a")).Foreground(lipgloss.Color("#FFFFFF"))
	case dashboard.StyleWhiteLowOpacity:
		return base.Background(lipgloss.Color("#e6e6e6")).Foreground(lipgloss.Color("#000000"))
	case dashboard.StyleTransparentBlack:
		return base.Foreground(lipgloss.Color("#FFFFFF"))
	case dashboard.StyleTransparentWhite:
		return base.Foreground(lipgloss.Color("#bbbbbb"))
	default:
		return base
	}
}
