package wildfire

// Glyphs maps each state to the character used by the text views.
var Glyphs = [...]rune{
	Empty:   '.',
	Tree:    '!',
	Burning: '#',
	Burnt:   '~',
}

// Glyph returns the display character for s. Unknown states render as '?'.
func Glyph(s State) rune {
	if int(s) < len(Glyphs) {
		return Glyphs[s]
	}
	return '?'
}

// LegendEntry pairs a glyph with a short description.
type LegendEntry struct {
	Glyph rune
	Label string
}

// Legend lists the glyphs in the order the prompt session prints them.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Glyph: Glyphs[Tree], Label: "Tree"},
		{Glyph: Glyphs[Burning], Label: "Burning Tree"},
		{Glyph: Glyphs[Burnt], Label: "Burnt Tree"},
		{Glyph: Glyphs[Empty], Label: "Empty Space"},
	}
}
