package tui

import "github.com/gdamore/tcell/v2"

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   tcell.Color
	Bg   tcell.Color
	Attr tcell.AttrMask
}

// Theme carries the panel's fixed colors
type Theme struct {
	Fg      tcell.Color
	Bg      tcell.Color
	Dim     tcell.Color
	Accent  tcell.Color
	FocusBg tcell.Color
}

// DefaultTheme returns the stock dark theme
func DefaultTheme() Theme {
	return Theme{
		Fg:      tcell.NewRGBColor(200, 200, 200),
		Bg:      tcell.NewRGBColor(20, 20, 30),
		Dim:     tcell.NewRGBColor(100, 100, 100),
		Accent:  tcell.NewRGBColor(100, 200, 220),
		FocusBg: tcell.NewRGBColor(40, 50, 70),
	}
}

// Label returns the theme's plain label style
func (t Theme) Label() Style {
	return Style{Fg: t.Fg, Bg: t.Bg}
}

// Focused returns the style for the control holding focus
func (t Theme) Focused() Style {
	return Style{Fg: t.Accent, Bg: t.FocusBg, Attr: tcell.AttrBold}
}
