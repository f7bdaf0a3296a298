package tui

import "github.com/gdamore/tcell/v2"

// FieldState holds editable text field state for threshold entry
type FieldState struct {
	Text   []rune
	Cursor int // Position before which the cursor sits (0 = before first rune)
}

// NewFieldState creates field state with the cursor at the end
func NewFieldState(initial string) *FieldState {
	runes := []rune(initial)
	return &FieldState{Text: runes, Cursor: len(runes)}
}

// Value returns the current text
func (f *FieldState) Value() string {
	return string(f.Text)
}

// SetValue replaces the text and moves the cursor to the end
func (f *FieldState) SetValue(s string) {
	f.Text = []rune(s)
	f.Cursor = len(f.Text)
}

// Insert adds a rune at the cursor
func (f *FieldState) Insert(r rune) {
	f.Text = append(f.Text[:f.Cursor], append([]rune{r}, f.Text[f.Cursor:]...)...)
	f.Cursor++
}

// DeleteBackward removes the rune before the cursor
func (f *FieldState) DeleteBackward() bool {
	if f.Cursor == 0 {
		return false
	}
	f.Text = append(f.Text[:f.Cursor-1], f.Text[f.Cursor:]...)
	f.Cursor--
	return true
}

// DeleteForward removes the rune at the cursor
func (f *FieldState) DeleteForward() bool {
	if f.Cursor >= len(f.Text) {
		return false
	}
	f.Text = append(f.Text[:f.Cursor], f.Text[f.Cursor+1:]...)
	return true
}

// MoveLeft steps the cursor back one rune
func (f *FieldState) MoveLeft() {
	if f.Cursor > 0 {
		f.Cursor--
	}
}

// MoveRight steps the cursor forward one rune
func (f *FieldState) MoveRight() {
	if f.Cursor < len(f.Text) {
		f.Cursor++
	}
}

// Field draws the field contents in a w-cell slot, cursor shown by reverse
// video when focused
func (r Region) Field(x, y, w int, f *FieldState, focused bool, th Theme) {
	st := Style{Fg: th.Fg, Bg: th.FocusBg}
	if !focused {
		st = Style{Fg: th.Fg, Bg: th.Bg, Attr: tcell.AttrUnderline}
	}
	for i := 0; i < w; i++ {
		r.Cell(x+i, y, ' ', st.Fg, st.Bg, st.Attr)
	}

	text := f.Text
	// Keep the cursor visible in a narrow slot
	start := 0
	if f.Cursor >= w {
		start = f.Cursor - w + 1
	}
	for i, ch := range text[start:] {
		if i >= w {
			break
		}
		attr := st.Attr
		if focused && start+i == f.Cursor {
			attr |= tcell.AttrReverse
		}
		r.Cell(x+i, y, ch, st.Fg, st.Bg, attr)
	}
	if focused && f.Cursor == len(text) && f.Cursor-start < w {
		r.Cell(x+f.Cursor-start, y, ' ', st.Fg, st.Bg, st.Attr|tcell.AttrReverse)
	}
}
