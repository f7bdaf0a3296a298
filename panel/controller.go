// Package panel implements the color-range picker controller for a layer's
// styling side panel: choosing a predefined range filtered by type and step
// count, toggling reversal, or authoring a custom palette with user-edited
// thresholds. The controller is a reducer: Update maps (state, event) to
// (state, side-effect requests) and never writes shared objects itself.
package panel

import (
	"strconv"

	"github.com/left-rite/kepler.gl/palette"
	"github.com/left-rite/kepler.gl/scale"
	"github.com/left-rite/kepler.gl/store"
	"github.com/left-rite/kepler.gl/tui"
)

// Focus identifies the control receiving input
type Focus uint8

const (
	FocusCustomToggle Focus = iota
	FocusTypeSelect
	FocusStepsSelect
	FocusReversedToggle
	FocusGrid
	FocusCustomDomain
	FocusThresholds
	FocusApply
	FocusCancel
)

// EventKind classifies user interactions delivered to Update
type EventKind uint8

const (
	EvNone      EventKind = iota // ignored
	EvFocusNext                  // tab / down
	EvFocusPrev                  // shift-tab / up
	EvPrev                       // left: previous option, cursor back
	EvNext                       // right
	EvActivate                   // enter / space
	EvRune                       // text input into a threshold field
	EvBackspace
	EvDelete
	EvToggleSketcher
)

// Event is one user interaction
type Event struct {
	Kind EventKind
	Rune rune
}

// Effect is a side-effect request emitted by Update; the host applies them
// in order after the state transition
type Effect interface{ effect() }

// SetPaletteUI requests a deep-partial configuration update through the
// parent-owned store
type SetPaletteUI struct {
	Patch store.Patch
}

// SelectColorRange is the final selection notification to the parent
type SelectColorRange struct {
	Range palette.ColorRange
}

func (SetPaletteUI) effect()     {}
func (SelectColorRange) effect() {}

// State is the controller's complete working state. Config and Selected are
// snapshots of parent-owned data; Thresholds and CustomDomain are component
// local, seeded once at construction and never recomputed reactively.
type State struct {
	Config       store.Config
	Selected     palette.ColorRange
	Domain       *scale.Domain
	Thresholds   []string
	CustomDomain bool
	Focus        Focus
	GridCursor   int
	EditRow      int
	Field        *tui.FieldState

	catalog *palette.Filtered
}

// NewState seeds controller state when the styling panel opens. Thresholds
// derive from the existing color map when one is present (edit mode), else
// by even subdivision of the domain (create mode); the custom-domain flag
// defaults to whether a color map existed at mount.
func NewState(catalog *palette.Filtered, cfg store.Config, selected palette.ColorRange, domain *scale.Domain) State {
	st := State{
		Config:   cfg,
		Selected: selected,
		Domain:   domain,
		catalog:  catalog,
		Field:    tui.NewFieldState(""),
	}

	if cm := cfg.CustomPalette.ColorMap; len(cm) > 0 {
		st.Thresholds = scale.ThresholdsFromColorMap(cm)
		st.CustomDomain = true
	} else {
		steps := cfg.ColorRangeConfig.Steps
		if n := len(cfg.CustomPalette.Colors); n > 0 {
			steps = n
		}
		st.Thresholds = scale.InitThresholds(domain, steps)
	}

	st.seedField()
	return st
}

// Catalog exposes the memoized filter the state was built over
func (st State) Catalog() *palette.Filtered {
	return st.catalog
}

// Filtered returns the catalog entries for the current type and step count
func (st State) Filtered() []palette.ColorRange {
	crc := st.Config.ColorRangeConfig
	return st.catalog.Get(crc.Type, crc.Steps)
}

// EditableRows is the number of threshold rows rendered as inputs: all of
// them in edit mode, all but the domain-max mirror in create mode
func (st State) EditableRows() int {
	rows := len(st.Thresholds)
	if n := len(st.Config.CustomPalette.Colors); n > 0 && rows >= n {
		rows = n - 1
	}
	return rows
}

// WithConfig refreshes the parent-owned snapshot after store writes.
// Thresholds are deliberately left alone: they derive once at construction,
// not reactively. Focus and cursors are clamped to the new mode.
func (st State) WithConfig(cfg store.Config) State {
	modeFlip := cfg.ColorRangeConfig.Custom != st.Config.ColorRangeConfig.Custom
	st.Config = cfg
	if modeFlip {
		st.Focus = FocusCustomToggle
		st.EditRow = 0
		st.seedField()
	}
	if n := len(st.Filtered()); st.GridCursor >= n {
		st.GridCursor = n - 1
	}
	if st.GridCursor < 0 {
		st.GridCursor = 0
	}
	return st
}

// seedField loads the focused threshold row into the text field
func (st *State) seedField() {
	row := st.EditRow
	if row >= 0 && row < len(st.Thresholds) {
		st.Field = tui.NewFieldState(st.Thresholds[row])
	} else {
		st.Field = tui.NewFieldState("")
	}
}

// Update is the controller transition function. It returns the next state
// and the side-effect requests the host must apply, in order, so local
// state and the store never visibly diverge.
func Update(st State, ev Event) (State, []Effect) {
	if ev.Kind == EvToggleSketcher {
		show := !st.Config.ShowSketcher
		return st, []Effect{SetPaletteUI{Patch: store.Patch{ShowSketcher: &show}}}
	}

	switch ev.Kind {
	case EvFocusNext:
		return moveFocus(st, 1), nil
	case EvFocusPrev:
		return moveFocus(st, -1), nil
	}

	if st.Config.ColorRangeConfig.Custom {
		return updateCustom(st, ev)
	}
	return updatePredefined(st, ev)
}

func updatePredefined(st State, ev Event) (State, []Effect) {
	crc := st.Config.ColorRangeConfig

	switch st.Focus {
	case FocusCustomToggle:
		if ev.Kind == EvActivate {
			return st, []Effect{customFlagPatch(true)}
		}

	case FocusTypeSelect:
		if ev.Kind == EvPrev || ev.Kind == EvNext {
			next := cycle(st.catalog.Types(), crc.Type, dir(ev.Kind))
			if next == crc.Type {
				return st, nil
			}
			p := store.ColorRangeConfigPatch{Type: &next}
			// Keep the steps invariant: the new type may not offer the
			// current step count
			if counts := st.catalog.StepCounts(next); len(counts) > 0 && !contains(counts, crc.Steps) {
				p.Steps = &counts[0]
			}
			return st, []Effect{SetPaletteUI{Patch: store.Patch{ColorRangeConfig: &p}}}
		}

	case FocusStepsSelect:
		if ev.Kind == EvPrev || ev.Kind == EvNext {
			counts := st.catalog.StepCounts(crc.Type)
			next := cycleInt(counts, crc.Steps, dir(ev.Kind))
			if next == crc.Steps {
				return st, nil
			}
			return st, []Effect{SetPaletteUI{Patch: store.Patch{
				ColorRangeConfig: &store.ColorRangeConfigPatch{Steps: &next},
			}}}
		}

	case FocusReversedToggle:
		if ev.Kind == EvActivate {
			rev := !crc.Reversed
			return st, []Effect{SetPaletteUI{Patch: store.Patch{
				ColorRangeConfig: &store.ColorRangeConfigPatch{Reversed: &rev},
			}}}
		}

	case FocusGrid:
		switch ev.Kind {
		case EvPrev:
			if st.GridCursor > 0 {
				st.GridCursor--
			}
			return st, nil
		case EvNext:
			if st.GridCursor < len(st.Filtered())-1 {
				st.GridCursor++
			}
			return st, nil
		case EvActivate:
			entries := st.Filtered()
			if st.GridCursor >= len(entries) {
				return st, nil
			}
			chosen := entries[st.GridCursor]
			if crc.Reversed {
				chosen = chosen.Reverse()
			}
			return st, []Effect{SelectColorRange{Range: chosen}}
		}
	}

	return st, nil
}

func updateCustom(st State, ev Event) (State, []Effect) {
	switch st.Focus {
	case FocusCustomToggle:
		if ev.Kind == EvActivate {
			return st, []Effect{customFlagPatch(false)}
		}

	case FocusCustomDomain:
		if ev.Kind == EvActivate {
			// Local flag only; flipping it never recomputes thresholds
			st.CustomDomain = !st.CustomDomain
			return st, nil
		}

	case FocusThresholds:
		return updateThresholdRow(st, ev)

	case FocusApply:
		if ev.Kind == EvActivate {
			cp := st.Config.CustomPalette
			return st, []Effect{SelectColorRange{Range: palette.ColorRange{
				Name:   cp.Name,
				Type:   palette.TypeCustom,
				Colors: append([]string(nil), cp.Colors...),
			}}}
		}

	case FocusCancel:
		if ev.Kind == EvActivate {
			return st, []Effect{customFlagPatch(false)}
		}
	}

	return st, nil
}

// updateThresholdRow routes editing keys into the focused field and commits
// every change through the threshold mutator, so the local sequence and the
// stored color map always move together
func updateThresholdRow(st State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EvPrev:
		st.Field.MoveLeft()
		return st, nil
	case EvNext:
		st.Field.MoveRight()
		return st, nil
	case EvRune:
		st.Field.Insert(ev.Rune)
	case EvBackspace:
		if !st.Field.DeleteBackward() {
			return st, nil
		}
	case EvDelete:
		if !st.Field.DeleteForward() {
			return st, nil
		}
	default:
		return st, nil
	}

	return commitThreshold(st)
}

// commitThreshold rebuilds thresholds and color map from the field's raw
// text. Raw input is stored verbatim, ordering and bounds included; a
// missing domain makes the whole edit a silent no-op.
func commitThreshold(st State) (State, []Effect) {
	es := scale.EditState{
		Domain:     st.Domain,
		Colors:     st.Config.CustomPalette.Colors,
		Thresholds: st.Thresholds,
		ColorMap:   st.Config.CustomPalette.ColorMap,
	}
	next := scale.SetThreshold(es, st.EditRow, st.Field.Value())
	if st.Domain == nil {
		return st, nil
	}

	st.Thresholds = next.Thresholds
	return st, []Effect{SetPaletteUI{Patch: store.Patch{
		CustomPalette: &store.CustomPalettePatch{ColorMap: next.ColorMap},
	}}}
}

// moveFocus cycles through the mode's focus ring; entering a threshold row
// reloads the edit field from the row's current value
func moveFocus(st State, dir int) State {
	if st.Config.ColorRangeConfig.Custom {
		return moveFocusCustom(st, dir)
	}

	ring := []Focus{FocusCustomToggle, FocusTypeSelect, FocusStepsSelect, FocusReversedToggle}
	if len(st.Filtered()) > 0 {
		ring = append(ring, FocusGrid)
	}
	st.Focus = ring[ringIndex(ring, st.Focus, dir)]
	return st
}

func moveFocusCustom(st State, dir int) State {
	rows := st.EditableRows()

	// Flatten the ring: custom toggle, domain toggle, each threshold row,
	// apply, cancel
	type slot struct {
		focus Focus
		row   int
	}
	ring := []slot{{FocusCustomToggle, 0}, {FocusCustomDomain, 0}}
	for i := 0; i < rows; i++ {
		ring = append(ring, slot{FocusThresholds, i})
	}
	ring = append(ring, slot{FocusApply, 0}, slot{FocusCancel, 0})

	cur := 0
	for i, s := range ring {
		if s.focus == st.Focus && (s.focus != FocusThresholds || s.row == st.EditRow) {
			cur = i
			break
		}
	}
	next := ring[(cur+dir+len(ring))%len(ring)]

	st.Focus = next.focus
	if next.focus == FocusThresholds {
		st.EditRow = next.row
		st.seedField()
	}
	return st
}

func customFlagPatch(on bool) Effect {
	return SetPaletteUI{Patch: store.Patch{
		ColorRangeConfig: &store.ColorRangeConfigPatch{Custom: &on},
	}}
}

func dir(k EventKind) int {
	if k == EvPrev {
		return -1
	}
	return 1
}

func ringIndex(ring []Focus, cur Focus, dir int) int {
	idx := 0
	for i, f := range ring {
		if f == cur {
			idx = i
			break
		}
	}
	return (idx + dir + len(ring)) % len(ring)
}

func cycle(options []string, cur string, dir int) string {
	if len(options) == 0 {
		return cur
	}
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	return options[(idx+dir+len(options))%len(options)]
}

func cycleInt(options []int, cur, dir int) int {
	if len(options) == 0 {
		return cur
	}
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	return options[(idx+dir+len(options))%len(options)]
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// StepsLabel formats a step count for the selector control
func StepsLabel(steps int) string {
	return strconv.Itoa(steps)
}

// ApplyEffects runs effect requests against the store and selection
// callback, then refreshes the state snapshot. Patches and the matching
// local state were produced together by Update, so applying them in order
// keeps the two representations consistent.
func ApplyEffects(st State, effs []Effect, s *store.Store, onSelect func(palette.ColorRange)) State {
	for _, e := range effs {
		switch e := e.(type) {
		case SetPaletteUI:
			s.Apply(e.Patch)
		case SelectColorRange:
			st.Selected = e.Range
			if onSelect != nil {
				onSelect(e.Range)
			}
		}
	}
	return st.WithConfig(s.Config())
}
