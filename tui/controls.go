package tui

// Selector draws a labeled value with prev/next arrows, the cell-UI stand-in
// for a dropdown: "Steps      ‹ 6 ›"
func (r Region) Selector(y int, label, value string, focused bool, th Theme) {
	st := th.Label()
	valueSt := st
	if focused {
		valueSt = th.Focused()
	}

	r.TextStyled(1, y, label, st)

	arrow := Style{Fg: th.Dim, Bg: st.Bg}
	if focused {
		arrow.Fg = th.Accent
	}
	x := r.W - RuneLen(value) - 5
	if x < RuneLen(label)+2 {
		x = RuneLen(label) + 2
	}
	r.TextStyled(x, y, "‹", arrow)
	r.TextStyled(x+2, y, value, valueSt)
	r.TextStyled(x+3+RuneLen(value), y, "›", arrow)
}

// Toggle draws a switch row: "[x] Reversed"
func (r Region) Toggle(y int, label string, on, focused bool, th Theme) {
	st := th.Label()
	if focused {
		st = th.Focused()
	}
	mark := ' '
	if on {
		mark = 'x'
	}
	r.Cell(1, y, '[', st.Fg, st.Bg, st.Attr)
	r.Cell(2, y, mark, st.Fg, st.Bg, st.Attr)
	r.Cell(3, y, ']', st.Fg, st.Bg, st.Attr)
	r.TextStyled(5, y, label, st)
}

// Button draws a bracketed action label: "[ Apply ]"
func (r Region) Button(x, y int, label string, focused bool, th Theme) int {
	st := Style{Fg: th.Dim, Bg: th.Bg}
	if focused {
		st = th.Focused()
	}
	text := "[ " + label + " ]"
	r.TextStyled(x, y, text, st)
	return x + RuneLen(text)
}

// SwatchRow renders an ordered color sequence as contiguous blocks with a
// selection marker. Reversed ranges arrive with their colors already
// inverted; the arrow is just a hint.
func (r Region) SwatchRow(y int, colors []string, reversed, selected, focused bool, th Theme) {
	bg := th.Bg
	if focused {
		bg = th.FocusBg
	}
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ' ', th.Fg, bg, 0)
	}

	marker := ' '
	if selected {
		marker = '●'
	}
	r.Cell(1, y, marker, th.Accent, bg, 0)

	x := 3
	blockW := swatchBlockWidth(r.W-x-2, len(colors))
	for _, hex := range colors {
		c := ParseHex(hex)
		for i := 0; i < blockW && x < r.W-2; i++ {
			r.Cell(x, y, ' ', c, c, 0)
			x++
		}
	}

	if reversed {
		r.Cell(r.W-1, y, '◂', th.Dim, bg, 0)
	}
}

// SwatchBar renders a single color as a filled run of cells with an
// optional overlaid label in a readable foreground
func (r Region) SwatchBar(x, y, w int, hex, label string) {
	c := ParseHex(hex)
	for i := 0; i < w; i++ {
		r.Cell(x+i, y, ' ', c, c, 0)
	}
	if label != "" {
		r.Text(x+1, y, Truncate(label, w-2), LabelFg(hex), c, 0)
	}
}

func swatchBlockWidth(avail, n int) int {
	if n <= 0 {
		return 0
	}
	w := avail / n
	if w < 1 {
		w = 1
	}
	return w
}
