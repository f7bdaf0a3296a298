package palette

// Reserved type tags understood by the catalog filter and the panel
const (
	TypeAll    = "all"    // filter wildcard, matches every catalog type
	TypeCustom = "custom" // user-authored range, never in the catalog
)

// ColorRange is a named, ordered sequence of hex colors forming a discrete
// gradient, tagged with a category type. Catalog instances are read-only;
// a reversed variant is derived on selection, never written in place.
type ColorRange struct {
	Name     string
	Type     string
	Category string
	Colors   []string
	Reversed bool
}

// Steps returns the number of discrete colors in the range
func (c ColorRange) Steps() int {
	return len(c.Colors)
}

// Reverse returns a derived variant with the color order inverted and the
// Reversed flag flipped; the receiver keeps its own color slice untouched
func (c ColorRange) Reverse() ColorRange {
	out := c
	out.Reversed = !c.Reversed
	out.Colors = make([]string, len(c.Colors))
	for i, col := range c.Colors {
		out.Colors[len(c.Colors)-1-i] = col
	}
	return out
}

// Matches reports whether this entry is the current selection. Equality is
// name plus resolved reversed flag, never object identity.
func (c ColorRange) Matches(name string, reversed bool) bool {
	return c.Name == name && c.Reversed == reversed
}
