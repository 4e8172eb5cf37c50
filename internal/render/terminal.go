package render

import (
	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/sims/wildfire"
)

// Palette maps each cell state to the terminal style used to draw it.
type Palette [4]tcell.Style

// DefaultPalette colours trees green, fire orange and ash grey.
func DefaultPalette() Palette {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Palette{
		wildfire.Empty:   base.Foreground(tcell.ColorGray),
		wildfire.Tree:    base.Foreground(tcell.NewRGBColor(60, 160, 70)),
		wildfire.Burning: base.Foreground(tcell.NewRGBColor(255, 130, 40)).Bold(true),
		wildfire.Burnt:   base.Foreground(tcell.NewRGBColor(110, 110, 110)),
	}
}

// Style returns the style for s, falling back to the default style.
func (p Palette) Style(s wildfire.State) tcell.Style {
	if int(s) < len(p) {
		return p[s]
	}
	return tcell.StyleDefault
}

// GridPainter draws snapshots into a tcell screen. Each cell takes two
// columns, the glyph and a spacer, matching the plain text frame.
type GridPainter struct {
	X, Y    int
	palette Palette
}

// NewGridPainter returns a painter anchored at (x, y).
func NewGridPainter(x, y int) *GridPainter {
	return &GridPainter{X: x, Y: y, palette: DefaultPalette()}
}

// Width is the number of screen columns a painted grid occupies.
func (p *GridPainter) Width() int { return wildfire.N * 2 }

// Height is the number of screen rows a painted grid occupies.
func (p *GridPainter) Height() int { return wildfire.N }

// Blit paints s. Cells whose highlight entry is true are drawn reversed.
func (p *GridPainter) Blit(screen tcell.Screen, s wildfire.Snapshot, highlight *[wildfire.N][wildfire.N]bool) {
	for row := 0; row < s.Dim(); row++ {
		for col := 0; col < s.Dim(); col++ {
			state := s.At(row, col)
			style := p.palette.Style(state)
			if highlight != nil && highlight[row][col] {
				style = style.Reverse(true)
			}
			x := p.X + col*2
			y := p.Y + row
			screen.SetContent(x, y, wildfire.Glyph(state), nil, style)
			screen.SetContent(x+1, y, ' ', nil, p.palette.Style(wildfire.Empty))
		}
	}
}
