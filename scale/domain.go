// Package scale holds the threshold derivation and color-map synchronization
// core for custom color scales: seeding break-points from a numeric domain or
// a serialized color map, applying single-point edits, and rebuilding the
// ordered label/color pairs the rest of the styling panel consumes.
package scale

import (
	"math"
	"strconv"
	"strings"
)

// Domain is the [min, max] numeric range of the data being color-encoded.
// It is externally owned and read-only here; a nil *Domain means the layer
// has no numeric field bound yet.
type Domain [2]float64

// NewDomain builds a domain from numeric bounds
func NewDomain(min, max float64) *Domain {
	return &Domain{min, max}
}

// DomainFromStrings coerces string bounds as data sources often deliver them.
// Non-numeric input degrades to NaN, which flows into generated labels
// instead of erroring.
func DomainFromStrings(min, max string) *Domain {
	return &Domain{ParseBound(min), ParseBound(max)}
}

// Min returns the lower bound
func (d *Domain) Min() float64 { return d[0] }

// Max returns the upper bound
func (d *Domain) Max() float64 { return d[1] }

// ParseBound parses a numeric-string bound, NaN on failure
func ParseBound(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// precision returns 0 for integral values, else the count of digits after
// the decimal point in the value's shortest decimal form
func precision(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// domainPrecision is the rounding precision for generated thresholds: the
// max of the two bounds' precisions, so subdivision never introduces digits
// finer than the domain's own resolution
func domainPrecision(d *Domain) int {
	pMin := precision(d[0])
	if pMax := precision(d[1]); pMax > pMin {
		return pMax
	}
	return pMin
}

// roundTo rounds at the given decimal precision; precision 0 truncates to
// the integer part
func roundTo(v float64, precision int) float64 {
	if precision <= 0 {
		return math.Trunc(v)
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

// formatBound renders a bound the way labels and threshold fields show it:
// shortest decimal form, "NaN" for unparseable input
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
