package ui

import (
	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/sims/wildfire"
)

var windArrows = [...]rune{
	wildfire.Centre: '·',
	wildfire.North:  '↑',
	wildfire.East:   '→',
	wildfire.South:  '↓',
	wildfire.West:   '←',
}

// Overlay draws optional visuals on top of the grid: a highlight of the
// cells that changed in the last step and a wind indicator.
type Overlay struct {
	showChanged bool
	style       tcell.Style
}

// NewOverlay constructs a new overlay instance with highlighting enabled.
func NewOverlay() *Overlay {
	return &Overlay{
		showChanged: true,
		style:       tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorAqua),
	}
}

// Toggle flips the changed-cell highlight.
func (o *Overlay) Toggle() { o.showChanged = !o.showChanged }

// ShowChanged reports whether changed cells are highlighted.
func (o *Overlay) ShowChanged() bool { return o.showChanged }

// Highlight returns the mask a GridPainter should reverse, or nil when the
// highlight is switched off.
func (o *Overlay) Highlight(s *wildfire.Snapshot) *[wildfire.N][wildfire.N]bool {
	if o == nil || !o.showChanged {
		return nil
	}
	return &s.Changed
}

// WindArrow returns the glyph for the wind direction.
func WindArrow(d wildfire.Direction) rune {
	if d.Valid() {
		return windArrows[d]
	}
	return windArrows[wildfire.Centre]
}

// Draw paints the wind indicator below a grid whose top-left corner is at
// (x, y).
func (o *Overlay) Draw(screen tcell.Screen, x, y int, s *wildfire.Snapshot) {
	if o == nil {
		return
	}
	label := "wind " + s.Wind.String() + " "
	drawText(screen, x, y+s.Dim()+1, label, o.style)
	screen.SetContent(x+len([]rune(label)), y+s.Dim()+1, WindArrow(s.Wind), nil, o.style)
}
