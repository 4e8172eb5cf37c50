package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/render"
	"wildfire-ca/internal/ui"
)

const (
	gridX     = 1
	gridY     = 1
	hudMargin = 4
	frameRate = 30 * time.Millisecond
)

// Viewer adapts a fire simulation to a full-screen tcell loop.
type Viewer struct {
	screen  tcell.Screen
	sim     FireSim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	paused   bool
	tickOnce bool
	quit     bool
	seed     int64
}

// NewViewer constructs a Viewer for sim drawing into an initialized screen.
func NewViewer(screen tcell.Screen, sim FireSim, tps int, seed int64) *Viewer {
	v := &Viewer{
		screen:  screen,
		sim:     sim,
		painter: render.NewGridPainter(gridX, gridY),
		hud:     ui.NewHUD(sim),
		overlay: ui.NewOverlay(),
		timer:   core.NewFixedStep(tps),
		seed:    seed,
	}
	v.hud.Update()
	return v
}

// Reset reinitializes the simulation state with the provided seed.
func (v *Viewer) Reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.tickOnce = false
	v.hud.Update()
}

// Seed returns the seed of the current run.
func (v *Viewer) Seed() int64 { return v.seed }

// Paused reports whether auto-play is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Done reports whether the user asked to quit.
func (v *Viewer) Done() bool { return v.quit }

// HandleEvent reacts to a tcell event.
func (v *Viewer) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// HandleKey applies a key press.
func (v *Viewer) HandleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.quit = true
		return
	case tcell.KeyEnter:
		v.paused = false
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch r {
	case 'q', 'Q':
		v.quit = true
	case ' ':
		v.paused = !v.paused
	case 'n', 'N':
		v.tickOnce = true
	case 'r', 'R':
		v.Reset(v.seed)
	case 's', 'S':
		v.Reset(core.TimeSeed())
	case 'o', 'O':
		v.overlay.Toggle()
	}
}

// Update advances the simulation when the tick timer or a single-step
// request calls for it.
func (v *Viewer) Update(now time.Time) {
	due := v.timer.ShouldStepAt(now)
	if !v.sim.Active() {
		v.tickOnce = false
		return
	}
	if (!v.paused && due) || v.tickOnce {
		v.sim.Step()
		v.tickOnce = false
		v.hud.Update()
	}
}

// Status summarizes the run state for the HUD.
func (v *Viewer) Status() string {
	switch {
	case !v.sim.Active():
		return "Finished, press r to replay or s to reseed"
	case v.paused:
		return "Paused"
	default:
		return "Running"
	}
}

// Draw renders the current simulation state.
func (v *Viewer) Draw() {
	v.screen.Clear()
	snap := v.sim.Snapshot()
	v.painter.Blit(v.screen, snap, v.overlay.Highlight(&snap))
	v.overlay.Draw(v.screen, gridX, gridY, &snap)
	v.hud.Draw(v.screen, gridX+v.painter.Width()+hudMargin, gridY, v.Status())
	v.screen.Show()
}

// Run owns the screen until the user quits. Events are read on a helper
// goroutine because PollEvent blocks.
func (v *Viewer) Run() error {
	if v.screen == nil {
		return fmt.Errorf("viewer has no screen")
	}
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	v.Draw()
	for !v.quit {
		select {
		case ev := <-events:
			v.HandleEvent(ev)
		case now := <-ticker.C:
			v.Update(now)
		}
		v.Draw()
	}
	return nil
}
