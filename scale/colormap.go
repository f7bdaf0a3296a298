package scale

// labelSeparator is the literal token between bucket bounds in a serialized
// label. The editor collaborator round-trips labels through this exact form,
// so it must never change.
const labelSeparator = " to "

// Bucket is one entry of a serialized color map: a human-readable range
// label and the hex color it styles
type Bucket struct {
	Label string
	Color string
}

// ColorMap is the serialized form of a custom scale: ordered buckets, one
// per color, first lower bound and last upper bound pinned to the domain.
// It is derived state, rebuilt wholesale on every threshold change and never
// edited entry by entry.
type ColorMap []Bucket

// Label formats a bucket label from its bounds
func Label(lower, upper string) string {
	return lower + labelSeparator + upper
}

// BuildColorMap rebuilds the full color map from interior thresholds, the
// domain bounds, and the fixed color sequence. Bucket i spans from
// thresholds[i-1] (domain min for the first) to thresholds[i] (domain max
// for the last). Threshold values are used verbatim; nothing validates
// ordering or bounds, so a wild edit yields a wild label, not an error.
func BuildColorMap(thresholds []string, d *Domain, colors []string) ColorMap {
	if d == nil {
		return nil
	}
	minS := formatBound(d[0])
	maxS := formatBound(d[1])

	cm := make(ColorMap, len(colors))
	for i, color := range colors {
		lower := minS
		if i > 0 {
			lower = thresholdAt(thresholds, i-1)
		}
		upper := maxS
		if i < len(colors)-1 {
			upper = thresholdAt(thresholds, i)
		}
		cm[i] = Bucket{Label: Label(lower, upper), Color: color}
	}
	return cm
}

// thresholdAt is a bounds-tolerant index: a short threshold slice yields an
// empty token in the label rather than a panic
func thresholdAt(thresholds []string, i int) string {
	if i < 0 || i >= len(thresholds) {
		return ""
	}
	return thresholds[i]
}
