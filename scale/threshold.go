package scale

import "strings"

// InitThresholds seeds the working threshold sequence by even subdivision of
// the domain. It returns steps values at the domain's decimal precision; the
// last value mirrors the domain max exactly so repeated rounding never
// drifts the top of the scale. The final element is not an editable interior
// cut point, callers render only the first steps-1 values as inputs.
// A nil domain yields nil.
func InitThresholds(d *Domain, steps int) []string {
	if d == nil || steps <= 0 {
		return nil
	}

	min, max := d[0], d[1]
	prec := domainPrecision(d)
	inc := roundTo((max-min)/float64(steps), prec)

	out := make([]string, steps)
	for i := 0; i < steps; i++ {
		if i == steps-1 {
			out[i] = formatBound(max)
			continue
		}
		out[i] = formatBound(roundTo(min+inc*float64(i+1), prec))
	}
	return out
}

// ThresholdsFromColorMap recovers the editable thresholds from a serialized
// color map: each label's upper-bound token, with the final entry dropped
// because the last upper bound is always the domain max. A malformed or
// empty label yields an empty placeholder token. Result length is one less
// than the color count.
func ThresholdsFromColorMap(cm ColorMap) []string {
	if len(cm) == 0 {
		return nil
	}
	out := make([]string, len(cm))
	for i, b := range cm {
		if b.Label == "" {
			continue
		}
		if _, upper, ok := strings.Cut(b.Label, labelSeparator); ok {
			out[i] = upper
		}
	}
	return out[:len(out)-1]
}

// EditState is the working state a single threshold edit operates on: the
// externally owned domain, the fixed custom color sequence, and the current
// thresholds plus derived color map.
type EditState struct {
	Domain     *Domain
	Colors     []string
	Thresholds []string
	ColorMap   ColorMap
}

// SetThreshold applies one user edit. The raw value is stored verbatim
// (text-field input, not parsed) and the color map is rebuilt wholesale so
// the two representations never diverge. Fresh slices are returned, the
// input state is left untouched. Missing domain or an out-of-range index is
// a silent no-op.
func SetThreshold(st EditState, index int, raw string) EditState {
	if st.Domain == nil {
		return st
	}
	if index < 0 || index >= len(st.Thresholds) {
		return st
	}

	next := make([]string, len(st.Thresholds))
	copy(next, st.Thresholds)
	next[index] = raw

	return EditState{
		Domain:     st.Domain,
		Colors:     st.Colors,
		Thresholds: next,
		ColorMap:   BuildColorMap(next, st.Domain, st.Colors),
	}
}
