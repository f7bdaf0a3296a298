package scale

import (
	"reflect"
	"strings"
	"testing"
)

func TestInitThresholds(t *testing.T) {
	tests := []struct {
		name   string
		domain *Domain
		steps  int
		want   []string
	}{
		{"Nil domain", nil, 5, nil},
		{"Zero steps", NewDomain(0, 10), 0, nil},
		{"Integer domain", NewDomain(0, 10), 5, []string{"2", "4", "6", "8", "10"}},
		{"Single step", NewDomain(0, 10), 1, []string{"10"}},
		{"Negative min", NewDomain(-10, 10), 4, []string{"-5", "0", "5", "10"}},
		{"Fractional max", NewDomain(0, 10.25), 4, []string{"2.56", "5.12", "7.68", "10.25"}},
		{"Fractional min", NewDomain(0.5, 4.5), 4, []string{"1.5", "2.5", "3.5", "4.5"}},
		{"Truncating increment", NewDomain(0, 7), 3, []string{"2", "4", "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitThresholds(tt.domain, tt.steps)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InitThresholds(%v, %d) = %v, want %v", tt.domain, tt.steps, got, tt.want)
			}
		})
	}
}

func TestInitThresholdsLastMirrorsMax(t *testing.T) {
	domains := []*Domain{
		NewDomain(0, 10),
		NewDomain(0, 10.25),
		NewDomain(-3.5, 99.999),
		NewDomain(1, 2),
	}
	for _, d := range domains {
		for steps := 1; steps <= 8; steps++ {
			got := InitThresholds(d, steps)
			if len(got) != steps {
				t.Fatalf("domain %v steps %d: got %d values", d, steps, len(got))
			}
			if got[steps-1] != formatBound(d[1]) {
				t.Errorf("domain %v steps %d: last = %q, want %q", d, steps, got[steps-1], formatBound(d[1]))
			}
		}
	}
}

func TestInitThresholdsPrecision(t *testing.T) {
	// Generated values carry at most as many decimals as the domain bounds
	got := InitThresholds(NewDomain(0, 10.25), 4)
	for _, v := range got {
		if i := strings.IndexByte(v, '.'); i >= 0 && len(v)-i-1 > 2 {
			t.Errorf("threshold %q exceeds domain precision of 2", v)
		}
	}
}

func TestInitThresholdsNaNPropagation(t *testing.T) {
	d := DomainFromStrings("garbage", "10")
	got := InitThresholds(d, 2)
	if len(got) != 2 {
		t.Fatalf("got %d values, want 2", len(got))
	}
	// A broken bound surfaces as a visibly broken token, not an error
	if got[0] != "NaN" {
		t.Errorf("got[0] = %q, want NaN token", got[0])
	}
	if got[1] != "10" {
		t.Errorf("got[1] = %q, want forced max", got[1])
	}
}

func TestThresholdsFromColorMap(t *testing.T) {
	tests := []struct {
		name string
		cm   ColorMap
		want []string
	}{
		{"Empty map", nil, nil},
		{
			"Round numbers",
			ColorMap{
				{Label: "0 to 2", Color: "#111111"},
				{Label: "2 to 4", Color: "#222222"},
				{Label: "4 to 6", Color: "#333333"},
				{Label: "6 to 8", Color: "#444444"},
				{Label: "8 to 10", Color: "#555555"},
			},
			[]string{"2", "4", "6", "8"},
		},
		{
			"Empty label placeholder",
			ColorMap{
				{Label: "0 to 2", Color: "#111111"},
				{Label: "", Color: "#222222"},
				{Label: "4 to 6", Color: "#333333"},
			},
			[]string{"2", ""},
		},
		{
			"Label without separator",
			ColorMap{
				{Label: "whatever", Color: "#111111"},
				{Label: "1 to 2", Color: "#222222"},
			},
			[]string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThresholdsFromColorMap(tt.cm)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ThresholdsFromColorMap() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSetThreshold(t *testing.T) {
	colors := []string{"#a", "#b", "#c", "#d", "#e"}
	st := EditState{
		Domain:     NewDomain(0, 10),
		Colors:     colors,
		Thresholds: []string{"2", "4", "6", "8"},
	}

	got := SetThreshold(st, 1, "5")

	wantThresholds := []string{"2", "5", "6", "8"}
	if !reflect.DeepEqual(got.Thresholds, wantThresholds) {
		t.Errorf("Thresholds = %v, want %v", got.Thresholds, wantThresholds)
	}

	wantMap := ColorMap{
		{Label: "0 to 2", Color: "#a"},
		{Label: "2 to 5", Color: "#b"},
		{Label: "5 to 6", Color: "#c"},
		{Label: "6 to 8", Color: "#d"},
		{Label: "8 to 10", Color: "#e"},
	}
	if !reflect.DeepEqual(got.ColorMap, wantMap) {
		t.Errorf("ColorMap = %v, want %v", got.ColorMap, wantMap)
	}

	// Input state must be untouched
	if st.Thresholds[1] != "4" {
		t.Errorf("input thresholds mutated: %v", st.Thresholds)
	}
}

func TestSetThresholdNoDomain(t *testing.T) {
	st := EditState{
		Colors:     []string{"#a", "#b"},
		Thresholds: []string{"3"},
		ColorMap:   ColorMap{{Label: "0 to 3", Color: "#a"}, {Label: "3 to 9", Color: "#b"}},
	}
	got := SetThreshold(st, 0, "7")
	if !reflect.DeepEqual(got, st) {
		t.Errorf("edit without a domain must be a no-op, got %#v", got)
	}
}

func TestSetThresholdPermissive(t *testing.T) {
	// Out-of-order and non-numeric edits are accepted verbatim; labels go
	// nonsensical, nothing clamps or rejects
	st := EditState{
		Domain:     NewDomain(0, 10),
		Colors:     []string{"#a", "#b", "#c"},
		Thresholds: []string{"4", "6"},
	}

	got := SetThreshold(st, 0, "6")
	got = SetThreshold(got, 1, "4")
	wantMap := ColorMap{
		{Label: "0 to 6", Color: "#a"},
		{Label: "6 to 4", Color: "#b"},
		{Label: "4 to 10", Color: "#c"},
	}
	if !reflect.DeepEqual(got.ColorMap, wantMap) {
		t.Errorf("ColorMap = %v, want %v", got.ColorMap, wantMap)
	}

	got = SetThreshold(got, 0, "abc")
	if got.ColorMap[0].Label != "0 to abc" {
		t.Errorf("non-numeric edit label = %q, want %q", got.ColorMap[0].Label, "0 to abc")
	}
}

func TestSetThresholdOutOfRangeIndex(t *testing.T) {
	st := EditState{
		Domain:     NewDomain(0, 10),
		Colors:     []string{"#a", "#b"},
		Thresholds: []string{"5"},
	}
	for _, idx := range []int{-1, 1, 99} {
		if got := SetThreshold(st, idx, "2"); !reflect.DeepEqual(got, st) {
			t.Errorf("index %d: expected no-op, got %#v", idx, got)
		}
	}
}

func TestColorMapRoundTrip(t *testing.T) {
	// Build from thresholds, parse back, rebuild: the serialized form and
	// the threshold sequence stay in lockstep
	d := NewDomain(0, 10)
	colors := []string{"#a", "#b", "#c", "#d", "#e"}
	thresholds := []string{"2", "4", "6", "8"}

	cm := BuildColorMap(thresholds, d, colors)
	back := ThresholdsFromColorMap(cm)
	if !reflect.DeepEqual(back, thresholds) {
		t.Fatalf("round trip thresholds = %v, want %v", back, thresholds)
	}
	if !reflect.DeepEqual(BuildColorMap(back, d, colors), cm) {
		t.Errorf("rebuilt map differs from original")
	}
}
