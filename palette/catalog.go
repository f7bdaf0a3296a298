package palette

// Type tags used by the built-in catalog
const (
	TypeSequential  = "sequential"
	TypeQualitative = "qualitative"
	TypeDiverging   = "diverging"
	TypeSingleHue   = "singlehue"
)

// DefaultCatalog is the built-in set of predefined color ranges: marquee
// multi-hue gradients plus ColorBrewer-derived ramps at the step counts the
// panel's steps selector exposes. Entries are read-only upstream data; the
// panel filters them, it never edits them.
var DefaultCatalog = []ColorRange{
	// Marquee gradients
	{Name: "Global Warming", Type: TypeSequential, Category: "Uber",
		Colors: []string{"#5A1846", "#900C3F", "#C70039", "#E3611C", "#F1920E", "#FFC300"}},
	{Name: "Sunrise", Type: TypeSequential, Category: "Uber",
		Colors: []string{"#355C7D", "#63617F", "#916681", "#C06C84", "#E59A8F", "#F8B195"}},
	{Name: "Ocean Green", Type: TypeSequential, Category: "Uber",
		Colors: []string{"#37535E", "#3EB588", "#60C778", "#8CD668", "#BFE35A", "#F6ED4F"}},
	{Name: "Uber Viz Sequential", Type: TypeSequential, Category: "Uber",
		Colors: []string{"#E6FAFA", "#AAD7DA", "#68B4BB", "#00939C"}},
	{Name: "Uber Viz Diverging", Type: TypeDiverging, Category: "Uber",
		Colors: []string{"#C22E00", "#D45F39", "#E68F71", "#7AB7BB", "#4C9B9F", "#00939C"}},

	// ColorBrewer sequential, multihue
	{Name: "YlGn", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#FFFFCC", "#C2E699", "#78C679", "#238443"}},
	{Name: "YlGn", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#FFFFCC", "#D9F0A3", "#ADDD8E", "#78C679", "#31A354", "#006837"}},
	{Name: "YlGn", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#FFFFE5", "#F7FCB9", "#D9F0A3", "#ADDD8E", "#78C679", "#41AB5D", "#238443", "#005A32"}},
	{Name: "YlGnBu", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#FFFFCC", "#A1DAB4", "#41B6C4", "#225EA8"}},
	{Name: "YlGnBu", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#FFFFCC", "#C7E9B4", "#7FCDBB", "#41B6C4", "#2C7FB8", "#253494"}},
	{Name: "BuGn", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#EDF8FB", "#B2E2E2", "#66C2A4", "#238B45"}},
	{Name: "BuGn", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#EDF8FB", "#CCECE6", "#99D8C9", "#66C2A4", "#2CA25F", "#006D2C"}},
	{Name: "OrRd", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#FEF0D9", "#FDCC8A", "#FC8D59", "#D7301F"}},
	{Name: "OrRd", Type: TypeSequential, Category: "ColorBrewer",
		Colors: []string{"#FEF0D9", "#FDD49E", "#FDBB84", "#FC8D59", "#E34A33", "#B30000"}},

	// ColorBrewer sequential, single hue
	{Name: "Greens", Type: TypeSingleHue, Category: "ColorBrewer",
		Colors: []string{"#EDF8E9", "#BAE4B3", "#74C476", "#238B45"}},
	{Name: "Greens", Type: TypeSingleHue, Category: "ColorBrewer",
		Colors: []string{"#EDF8E9", "#C7E9C0", "#A1D99B", "#74C476", "#31A354", "#006D2C"}},
	{Name: "Blues", Type: TypeSingleHue, Category: "ColorBrewer",
		Colors: []string{"#EFF3FF", "#BDD7E7", "#6BAED6", "#2171B5"}},
	{Name: "Blues", Type: TypeSingleHue, Category: "ColorBrewer",
		Colors: []string{"#EFF3FF", "#C6DBEF", "#9ECAE1", "#6BAED6", "#3182BD", "#08519C"}},
	{Name: "Greys", Type: TypeSingleHue, Category: "ColorBrewer",
		Colors: []string{"#F7F7F7", "#CCCCCC", "#969696", "#525252"}},
	{Name: "Greys", Type: TypeSingleHue, Category: "ColorBrewer",
		Colors: []string{"#F7F7F7", "#D9D9D9", "#BDBDBD", "#969696", "#636363", "#252525"}},

	// ColorBrewer diverging
	{Name: "RdBu", Type: TypeDiverging, Category: "ColorBrewer",
		Colors: []string{"#CA0020", "#F4A582", "#92C5DE", "#0571B0"}},
	{Name: "RdBu", Type: TypeDiverging, Category: "ColorBrewer",
		Colors: []string{"#B2182B", "#EF8A62", "#FDDBC7", "#D1E5F0", "#67A9CF", "#2166AC"}},
	{Name: "RdBu", Type: TypeDiverging, Category: "ColorBrewer",
		Colors: []string{"#B2182B", "#D6604D", "#F4A582", "#FDDBC7", "#D1E5F0", "#92C5DE", "#4393C3", "#2166AC"}},
	{Name: "PiYG", Type: TypeDiverging, Category: "ColorBrewer",
		Colors: []string{"#D01C8B", "#F1B6DA", "#B8E186", "#4DAC26"}},
	{Name: "PiYG", Type: TypeDiverging, Category: "ColorBrewer",
		Colors: []string{"#C51B7D", "#E9A3C9", "#FDE0EF", "#E6F5D0", "#A1D76A", "#4D9221"}},

	// ColorBrewer qualitative
	{Name: "Accent", Type: TypeQualitative, Category: "ColorBrewer",
		Colors: []string{"#7FC97F", "#BEAED4", "#FDC086", "#FFFF99"}},
	{Name: "Accent", Type: TypeQualitative, Category: "ColorBrewer",
		Colors: []string{"#7FC97F", "#BEAED4", "#FDC086", "#FFFF99", "#386CB0", "#F0027F"}},
	{Name: "Paired", Type: TypeQualitative, Category: "ColorBrewer",
		Colors: []string{"#A6CEE3", "#1F78B4", "#B2DF8A", "#33A02C"}},
	{Name: "Paired", Type: TypeQualitative, Category: "ColorBrewer",
		Colors: []string{"#A6CEE3", "#1F78B4", "#B2DF8A", "#33A02C", "#FB9A99", "#E31A1C"}},
	{Name: "Paired", Type: TypeQualitative, Category: "ColorBrewer",
		Colors: []string{"#A6CEE3", "#1F78B4", "#B2DF8A", "#33A02C", "#FB9A99", "#E31A1C", "#FDBF6F", "#FF7F00"}},
	{Name: "Set1", Type: TypeQualitative, Category: "ColorBrewer",
		Colors: []string{"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3"}},
	{Name: "Set1", Type: TypeQualitative, Category: "ColorBrewer",
		Colors: []string{"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3", "#FF7F00", "#FFFF33"}},
}
