package panel

import (
	"github.com/left-rite/kepler.gl/palette"
	"github.com/left-rite/kepler.gl/scale"
	"github.com/left-rite/kepler.gl/tui"
)

// Column layout for the predefined grid and the custom editor rows
const (
	nameColW  = 14
	fieldColW = 10
)

// View renders the panel state into a region. Rendering is pure read: all
// interaction flows through Update.
func View(st State, r tui.Region, th tui.Theme) {
	r.Fill(th.Bg)

	crc := st.Config.ColorRangeConfig
	r.Toggle(0, "Custom Palette", crc.Custom, st.Focus == FocusCustomToggle, th)

	if crc.Custom {
		viewCustom(st, r, th)
		return
	}

	// Each configuration field gets its own labeled control outside custom
	// mode; custom mode collapses them all behind the toggle above
	r.Selector(1, "Type", crc.Type, st.Focus == FocusTypeSelect, th)
	r.Selector(2, "Steps", StepsLabel(crc.Steps), st.Focus == FocusStepsSelect, th)
	r.Toggle(3, "Reversed", crc.Reversed, st.Focus == FocusReversedToggle, th)

	grid := r.Sub(0, 5, r.W, r.H-5)
	for i, entry := range st.Filtered() {
		if i >= grid.H {
			break
		}
		shown := entry
		if crc.Reversed {
			shown = entry.Reverse()
		}
		selected := entry.Name == st.Selected.Name && st.Selected.Reversed == crc.Reversed
		focused := st.Focus == FocusGrid && i == st.GridCursor

		nameSt := tui.Style{Fg: th.Dim, Bg: th.Bg}
		if focused {
			nameSt = tui.Style{Fg: th.Fg, Bg: th.FocusBg}
		}
		grid.TextStyled(1, i, tui.Truncate(entry.Name, nameColW-2), nameSt)
		grid.Sub(nameColW, i, grid.W-nameColW, 1).
			SwatchRow(0, shown.Colors, shown.Reversed, selected, focused, th)
	}
}

// viewCustom renders the custom-palette editor: one row per color with its
// bucket label over the swatch and, for every interior cut point, an
// editable threshold field
func viewCustom(st State, r tui.Region, th tui.Theme) {
	r.Toggle(1, "Custom Breaks", st.CustomDomain, st.Focus == FocusCustomDomain, th)

	cp := st.Config.CustomPalette
	cm := cp.ColorMap
	if len(cm) == 0 {
		cm = scale.BuildColorMap(st.Thresholds, st.Domain, cp.Colors)
	}

	rows := st.EditableRows()
	y := 3
	for i, color := range cp.Colors {
		if y >= r.H-1 {
			break
		}
		label := ""
		if i < len(cm) {
			label = cm[i].Label
		}
		r.SwatchBar(1, y, r.W-fieldColW-3, color, label)

		if i < rows {
			focused := st.Focus == FocusThresholds && st.EditRow == i
			if focused {
				r.Field(r.W-fieldColW-1, y, fieldColW, st.Field, true, th)
			} else {
				r.Field(r.W-fieldColW-1, y, fieldColW, tui.NewFieldState(thresholdText(st, i)), false, th)
			}
		}
		y++
	}

	y++
	x := r.Button(1, y, "Apply", st.Focus == FocusApply, th)
	r.Button(x+2, y, "Cancel", st.Focus == FocusCancel, th)
}

func thresholdText(st State, i int) string {
	if i < len(st.Thresholds) {
		return st.Thresholds[i]
	}
	return ""
}

// SelectedIn reports which filtered entry, if any, is the current selection
// under the resolved reversed flag; -1 when none match
func SelectedIn(entries []palette.ColorRange, selected palette.ColorRange, reversed bool) int {
	for i, e := range entries {
		if e.Name == selected.Name && selected.Reversed == reversed {
			return i
		}
	}
	return -1
}
