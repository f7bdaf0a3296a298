package palette

// Filter returns catalog entries matching the type tag and step count,
// preserving catalog order. TypeAll matches every type. Pure; an empty
// result is valid.
func Filter(catalog []ColorRange, rangeType string, steps int) []ColorRange {
	var out []ColorRange
	for _, c := range catalog {
		if rangeType != TypeAll && c.Type != rangeType {
			continue
		}
		if len(c.Colors) != steps {
			continue
		}
		out = append(out, c)
	}
	return out
}

type filterKey struct {
	rangeType string
	steps     int
}

// Filtered memoizes Filter results over a fixed catalog, keyed by the
// (type, steps) pair so repeated lookups during rendering recompute only
// when either input changes.
type Filtered struct {
	catalog []ColorRange
	cache   map[filterKey][]ColorRange
}

// NewFiltered wraps a catalog with a filter cache
func NewFiltered(catalog []ColorRange) *Filtered {
	return &Filtered{
		catalog: catalog,
		cache:   make(map[filterKey][]ColorRange),
	}
}

// Get returns the memoized filter result for (rangeType, steps)
func (f *Filtered) Get(rangeType string, steps int) []ColorRange {
	key := filterKey{rangeType, steps}
	if hit, ok := f.cache[key]; ok {
		return hit
	}
	out := Filter(f.catalog, rangeType, steps)
	f.cache[key] = out
	return out
}

// Types returns the distinct type tags present in the catalog, in first-seen
// order, prefixed with TypeAll
func (f *Filtered) Types() []string {
	out := []string{TypeAll}
	seen := map[string]bool{}
	for _, c := range f.catalog {
		if !seen[c.Type] {
			seen[c.Type] = true
			out = append(out, c.Type)
		}
	}
	return out
}

// StepCounts returns the distinct step counts available for a type tag, in
// ascending order
func (f *Filtered) StepCounts(rangeType string) []int {
	seen := map[int]bool{}
	var out []int
	for _, c := range f.catalog {
		if rangeType != TypeAll && c.Type != rangeType {
			continue
		}
		n := len(c.Colors)
		if !seen[n] {
			seen[n] = true
			// Insertion sort keeps the list small-N cheap
			i := len(out)
			out = append(out, n)
			for i > 0 && out[i-1] > out[i] {
				out[i-1], out[i] = out[i], out[i-1]
				i--
			}
		}
	}
	return out
}
