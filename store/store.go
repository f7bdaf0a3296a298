// Package store owns the panel configuration object shared between the
// color-range panel and its parent: current selection settings, the custom
// palette under construction, and the sketcher visibility flag. Updates are
// deep-partial patches applied by reconstruction, never in-place writes, so
// an already handed-out snapshot can never change under its reader.
package store

import "github.com/left-rite/kepler.gl/scale"

// ColorRangeConfig is the mutable selection state of the panel
type ColorRangeConfig struct {
	Type     string // palette category, "all", or "custom"
	Steps    int
	Reversed bool
	Custom   bool // true renders the custom editor instead of the catalog grid
}

// CustomPalette is the user-authored range plus its derived color map
type CustomPalette struct {
	Name     string
	Type     string
	Colors   []string
	ColorMap scale.ColorMap
}

// Config is the externally owned panel configuration object
type Config struct {
	ColorRangeConfig ColorRangeConfig
	CustomPalette    CustomPalette
	ShowSketcher     bool
}

// ColorRangeConfigPatch updates individual selection fields; nil means keep
type ColorRangeConfigPatch struct {
	Type     *string
	Steps    *int
	Reversed *bool
	Custom   *bool
}

// CustomPalettePatch updates the custom palette. Colors and ColorMap replace
// wholesale when non-nil; the color map is derived state and is never merged
// entry by entry.
type CustomPalettePatch struct {
	Name     *string
	Type     *string
	Colors   []string
	ColorMap scale.ColorMap
}

// Patch is a deep-partial update request for the configuration object
type Patch struct {
	ColorRangeConfig *ColorRangeConfigPatch
	CustomPalette    *CustomPalettePatch
	ShowSketcher     *bool
}

// Store holds the configuration and fans updates out to listeners. Single
// writer, synchronous dispatch, fire-and-forget: Apply returns once every
// listener has run.
type Store struct {
	cfg       Config
	listeners []func(Config)
}

// New creates a store seeded with an initial configuration
func New(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Config returns the current configuration snapshot
func (s *Store) Config() Config {
	return s.cfg
}

// Subscribe registers a listener invoked after every applied patch
func (s *Store) Subscribe(fn func(Config)) {
	s.listeners = append(s.listeners, fn)
}

// Apply merges a deep-partial patch into a fresh configuration and notifies
// listeners
func (s *Store) Apply(p Patch) {
	s.cfg = Merge(s.cfg, p)
	for _, fn := range s.listeners {
		fn(s.cfg)
	}
}

// Merge returns a new configuration with the patch's set fields applied
func Merge(cfg Config, p Patch) Config {
	out := cfg

	if crc := p.ColorRangeConfig; crc != nil {
		if crc.Type != nil {
			out.ColorRangeConfig.Type = *crc.Type
		}
		if crc.Steps != nil {
			out.ColorRangeConfig.Steps = *crc.Steps
		}
		if crc.Reversed != nil {
			out.ColorRangeConfig.Reversed = *crc.Reversed
		}
		if crc.Custom != nil {
			out.ColorRangeConfig.Custom = *crc.Custom
		}
	}

	if cp := p.CustomPalette; cp != nil {
		if cp.Name != nil {
			out.CustomPalette.Name = *cp.Name
		}
		if cp.Type != nil {
			out.CustomPalette.Type = *cp.Type
		}
		if cp.Colors != nil {
			out.CustomPalette.Colors = append([]string(nil), cp.Colors...)
		}
		if cp.ColorMap != nil {
			out.CustomPalette.ColorMap = append(scale.ColorMap(nil), cp.ColorMap...)
		}
	}

	if p.ShowSketcher != nil {
		out.ShowSketcher = *p.ShowSketcher
	}

	return out
}
