package status

// Swatch is a background/text color pair a status can be published with.
type Swatch struct {
	Name       string
	Background string
	Text       string
}

// Palette is the fixed set of swatches offered by the status composer.
// Index 0 is the default selection.
var Palette = [8]Swatch{
	{Name: "Sky", Background: "#0EA5E9", Text: "#FFFFFF"},
	{Name: "Violet", Background: "#8B5CF6", Text: "#FFFFFF"},
	{Name: "Pink", Background: "#EC4899", Text: "#FFFFFF"},
	{Name: "Orange", Background: "#F97316", Text: "#FFFFFF"},
	{Name: "Emerald", Background: "#10B981", Text: "#FFFFFF"},
	{Name: "Red", Background: "#EF4444", Text: "#FFFFFF"},
	{Name: "Charcoal", Background: "#222222", Text: "#FFFFFF"},
	{Name: "Paper", Background: "#FFFFFF", Text: "#222222"},
}

// DefaultSwatch is the palette index selected when the composer is reset.
const DefaultSwatch = 0

// SwatchFor returns the palette entry whose background matches bg.
func SwatchFor(bg string) (Swatch, int, bool) {
	for i, sw := range Palette {
		if sw.Background == bg {
			return sw, i, true
		}
	}
	return Swatch{}, -1, false
}
