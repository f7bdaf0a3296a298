package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex converts a hex color string to a tcell color. Invalid input maps
// to the terminal default rather than erroring; a broken swatch is a UI
// blemish, not a failure.
func ParseHex(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// LabelFg picks black or white for text drawn over the given hex color,
// whichever reads better
func LabelFg(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	l, _, _ := c.Lab()
	if l > 0.5 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
