// Interactive demo for the color-range picker panel: hosts the controller
// against the built-in catalog, a sample numeric domain, and an in-memory
// configuration store. Tab/arrows move focus, enter/space activates, digits
// edit thresholds in custom mode, escape quits.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/left-rite/kepler.gl/palette"
	"github.com/left-rite/kepler.gl/panel"
	"github.com/left-rite/kepler.gl/scale"
	"github.com/left-rite/kepler.gl/store"
	"github.com/left-rite/kepler.gl/tui"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	domain := scale.NewDomain(0, 10.25)
	s := store.New(store.Config{
		ColorRangeConfig: store.ColorRangeConfig{Type: palette.TypeAll, Steps: 6},
		CustomPalette: store.CustomPalette{
			Name:   "Custom Palette",
			Type:   palette.TypeCustom,
			Colors: []string{"#5A1846", "#900C3F", "#C70039", "#E3611C", "#F1920E", "#FFC300"},
		},
	})

	catalog := palette.NewFiltered(palette.DefaultCatalog)
	st := panel.NewState(catalog, s.Config(), palette.DefaultCatalog[0], domain)
	th := tui.DefaultTheme()

	for {
		w, h := screen.Size()
		buf := tui.NewBuffer(w, h)
		panel.View(st, buf.Region(), th)
		buf.Flush(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			pe, quit := translateKey(ev, st)
			if quit {
				return
			}
			next, effs := panel.Update(st, pe)
			st = panel.ApplyEffects(next, effs, s, nil)
		}
	}
}

// translateKey maps terminal keys onto panel events. Plain runes go into
// the focused threshold field; everywhere else space doubles as activate.
func translateKey(ev *tcell.EventKey, st panel.State) (panel.Event, bool) {
	editing := st.Focus == panel.FocusThresholds

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return panel.Event{}, true
	case tcell.KeyTab, tcell.KeyDown:
		return panel.Event{Kind: panel.EvFocusNext}, false
	case tcell.KeyBacktab, tcell.KeyUp:
		return panel.Event{Kind: panel.EvFocusPrev}, false
	case tcell.KeyLeft:
		return panel.Event{Kind: panel.EvPrev}, false
	case tcell.KeyRight:
		return panel.Event{Kind: panel.EvNext}, false
	case tcell.KeyEnter:
		return panel.Event{Kind: panel.EvActivate}, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return panel.Event{Kind: panel.EvBackspace}, false
	case tcell.KeyDelete:
		return panel.Event{Kind: panel.EvDelete}, false
	case tcell.KeyRune:
		r := ev.Rune()
		if editing {
			return panel.Event{Kind: panel.EvRune, Rune: r}, false
		}
		switch r {
		case ' ':
			return panel.Event{Kind: panel.EvActivate}, false
		case 's':
			return panel.Event{Kind: panel.EvToggleSketcher}, false
		case 'q':
			return panel.Event{}, true
		}
	}

	return panel.Event{Kind: panel.EvNone}, false
}
