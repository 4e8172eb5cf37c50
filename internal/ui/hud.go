package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/core"
)

// HUD renders the parameter panel to the right of the grid.
type HUD struct {
	sim      core.Sim
	title    string
	snapshot core.ParameterSnapshot

	labelStyle tcell.Style
	valueStyle tcell.Style
	titleStyle tcell.Style
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &HUD{
		sim:        sim,
		title:      buildTitle(sim),
		labelStyle: base.Foreground(tcell.ColorSilver),
		valueStyle: base.Foreground(tcell.ColorWhite).Bold(true),
		titleStyle: base.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Lines returns the panel text, one entry per screen row.
func (h *HUD) Lines(status string) []string {
	lines := []string{h.title, ""}
	for _, group := range h.snapshot.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-18s %s", p.Label, p.Value))
		}
		lines = append(lines, "")
	}
	lines = append(lines, status, "", keyHelp)
	return lines
}

const keyHelp = "space pause  n step  r reset  s reseed  o overlay  q quit"

// Draw paints the HUD with its top-left corner at (x, y).
func (h *HUD) Draw(screen tcell.Screen, x, y int, status string) {
	if h == nil {
		return
	}
	for i, line := range h.Lines(status) {
		style := h.labelStyle
		switch {
		case i == 0:
			style = h.titleStyle
		case strings.HasPrefix(line, "  "):
			style = h.valueStyle
		}
		drawText(screen, x, y+i, line, style)
	}
}

func buildTitle(sim core.Sim) string {
	if sim == nil {
		return "Parameters"
	}
	name := sim.Name()
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Parameters"
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
