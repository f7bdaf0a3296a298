// Package tui provides the cell-buffer rendering primitives and the small
// widget set the styling panel draws with: regions, selectors, toggles,
// swatch rows, and editable text fields. Widgets are stateless draw calls
// over a Region; the panel controller owns all interaction state.
package tui

import "github.com/gdamore/tcell/v2"

// Cell is one rendered character cell
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
	Attr tcell.AttrMask
}

// Buffer is a W×H cell grid regions render into before a single flush to
// the screen
type Buffer struct {
	W, H  int
	Cells []Cell
}

// NewBuffer allocates a cleared buffer
func NewBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, Cells: make([]Cell, w*h)}
}

// Region returns the full-buffer region
func (b *Buffer) Region() Region {
	return Region{Cells: b.Cells, TotalW: b.W, W: b.W, H: b.H}
}

// Reset clears every cell
func (b *Buffer) Reset() {
	clear(b.Cells)
}

// Flush writes the buffer to a tcell screen without showing it; callers
// decide when to Show
func (b *Buffer) Flush(s tcell.Screen) {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := b.Cells[y*b.W+x]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			st := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Attributes(c.Attr)
			s.SetContent(x, y, ch, nil, st)
		}
	}
}

// Region is a rectangular area within a cell buffer. All coordinates are
// relative to the region's origin.
type Region struct {
	Cells  []Cell
	TotalW int // Width of the underlying buffer
	X, Y   int // Absolute position in the buffer
	W, H   int // Region dimensions
}

// Sub returns a nested region with coordinates relative to the parent,
// clipped to the parent's bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg tcell.Color, attr tcell.AttrMask) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y
	if uint(absX) >= uint(r.TotalW) {
		return
	}
	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = Cell{Rune: ch, Fg: fg, Bg: bg, Attr: attr}
	}
}

// Fill fills the region with a background color
func (r Region) Fill(bg tcell.Color) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', tcell.ColorDefault, bg, tcell.AttrNone)
		}
	}
}

// Text renders text at a position, truncating at the region edge
func (r Region) Text(x, y int, s string, fg, bg tcell.Color, attr tcell.AttrMask) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, fg, bg, attr)
		}
		col++
	}
}

// TextStyled renders text using a Style
func (r Region) TextStyled(x, y int, s string, style Style) {
	r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextRight renders text right-aligned on a row
func (r Region) TextRight(y int, s string, style Style) {
	r.TextStyled(r.W-RuneLen(s), y, s, style)
}

// RuneLen counts runes for cell-width purposes
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Truncate cuts a string to at most w runes
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == w {
			return s[:i]
		}
		n++
	}
	return s
}
