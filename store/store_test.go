package store

import (
	"reflect"
	"testing"

	"github.com/left-rite/kepler.gl/scale"
)

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func baseConfig() Config {
	return Config{
		ColorRangeConfig: ColorRangeConfig{Type: "sequential", Steps: 6},
		CustomPalette: CustomPalette{
			Name:   "Custom Palette",
			Type:   "custom",
			Colors: []string{"#a", "#b", "#c"},
		},
	}
}

func TestMergePartial(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		check func(t *testing.T, got Config)
	}{
		{
			"Empty patch keeps everything",
			Patch{},
			func(t *testing.T, got Config) {
				if !reflect.DeepEqual(got, baseConfig()) {
					t.Errorf("config changed: %#v", got)
				}
			},
		},
		{
			"Single selection field",
			Patch{ColorRangeConfig: &ColorRangeConfigPatch{Reversed: boolPtr(true)}},
			func(t *testing.T, got Config) {
				if !got.ColorRangeConfig.Reversed {
					t.Error("Reversed not applied")
				}
				if got.ColorRangeConfig.Type != "sequential" || got.ColorRangeConfig.Steps != 6 {
					t.Errorf("unrelated fields changed: %+v", got.ColorRangeConfig)
				}
			},
		},
		{
			"Type and steps together",
			Patch{ColorRangeConfig: &ColorRangeConfigPatch{Type: strPtr("diverging"), Steps: intPtr(4)}},
			func(t *testing.T, got Config) {
				if got.ColorRangeConfig.Type != "diverging" || got.ColorRangeConfig.Steps != 4 {
					t.Errorf("patch not applied: %+v", got.ColorRangeConfig)
				}
			},
		},
		{
			"Color map replaced wholesale",
			Patch{CustomPalette: &CustomPalettePatch{
				ColorMap: scale.ColorMap{{Label: "0 to 5", Color: "#a"}, {Label: "5 to 9", Color: "#b"}},
			}},
			func(t *testing.T, got Config) {
				if len(got.CustomPalette.ColorMap) != 2 {
					t.Fatalf("color map = %v", got.CustomPalette.ColorMap)
				}
				if !reflect.DeepEqual(got.CustomPalette.Colors, []string{"#a", "#b", "#c"}) {
					t.Errorf("colors changed: %v", got.CustomPalette.Colors)
				}
			},
		},
		{
			"Sketcher flag",
			Patch{ShowSketcher: boolPtr(true)},
			func(t *testing.T, got Config) {
				if !got.ShowSketcher {
					t.Error("ShowSketcher not applied")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Merge(baseConfig(), tt.patch))
		})
	}
}

func TestMergeDoesNotAliasPatchSlices(t *testing.T) {
	colors := []string{"#1", "#2"}
	got := Merge(baseConfig(), Patch{CustomPalette: &CustomPalettePatch{Colors: colors}})
	colors[0] = "#mutated"
	if got.CustomPalette.Colors[0] != "#1" {
		t.Error("merged config aliases the patch slice")
	}
}

func TestStoreNotifiesListeners(t *testing.T) {
	s := New(baseConfig())

	var seen []Config
	s.Subscribe(func(c Config) { seen = append(seen, c) })
	s.Subscribe(func(c Config) { seen = append(seen, c) })

	s.Apply(Patch{ColorRangeConfig: &ColorRangeConfigPatch{Custom: boolPtr(true)}})

	if len(seen) != 2 {
		t.Fatalf("got %d notifications, want 2", len(seen))
	}
	for i, c := range seen {
		if !c.ColorRangeConfig.Custom {
			t.Errorf("listener %d saw stale config", i)
		}
	}
	if !s.Config().ColorRangeConfig.Custom {
		t.Error("store config not updated")
	}
}

func TestStoreSnapshotStability(t *testing.T) {
	s := New(baseConfig())
	before := s.Config()
	s.Apply(Patch{ColorRangeConfig: &ColorRangeConfigPatch{Steps: intPtr(8)}})
	if before.ColorRangeConfig.Steps != 6 {
		t.Error("earlier snapshot changed after Apply")
	}
}
