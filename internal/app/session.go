package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/render"
	"wildfire-ca/internal/sims/wildfire"
)

// Session is the line-oriented driver: it asks for the fire parameters,
// prints a frame per step and offers a restart when the fire dies out.
type Session struct {
	cfg     *Config
	factory core.Factory
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
	seeds   func() int64

	closed bool
}

// NewSession returns a session reading answers from in and printing to out.
// Normalization notes go to logger.
func NewSession(cfg *Config, factory core.Factory, in io.Reader, out io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		cfg:     cfg,
		factory: factory,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		seeds:   core.TimeSeed,
	}
}

// Run plays simulations until the user declines a restart or input ends.
func (s *Session) Run() error {
	for {
		if err := s.runOnce(); err != nil {
			return err
		}
		again, err := s.askRestart()
		if err != nil || !again {
			return err
		}
	}
}

func (s *Session) runOnce() error {
	fmt.Fprintln(s.out, "Fire Simulator:")
	if err := render.WriteLegend(s.out); err != nil {
		return fmt.Errorf("write legend: %w", err)
	}
	s.pause()

	params := s.cfg.SimParams()
	if !s.cfg.IsSet("catch") {
		answer := s.prompt("\nEnter an integer between 0 - 100 for the probability of a tree catching fire: ")
		params["catch_chance"] = s.parseChance(answer)
	}
	if !s.cfg.IsSet("origin") {
		answer := s.prompt("\nEnter a number corresponding to a starting location:\n0 = Centre, 1 = North, 2 = East, 3 = South, 4 = West: ")
		params["origin"] = s.parseDirection("starting location", answer)
	}
	if !s.cfg.IsSet("wind") {
		answer := s.prompt("\nEnter a number corresponding to a wind direction:\n0 = No Wind, 1 = North, 2 = East, 3 = South, 4 = West: ")
		params["wind"] = s.parseDirection("wind direction", answer)
	}

	if !s.cfg.IsSet("seed") {
		params["seed"] = strconv.FormatInt(s.seeds(), 10)
	}
	s.logger.Printf("seed %s", params["seed"])

	sim, err := Build(s.factory, params)
	if err != nil {
		return err
	}
	for _, note := range Notes(sim) {
		s.logger.Print(note)
	}

	if err := render.WriteFrame(s.out, sim.Snapshot()); err != nil {
		return err
	}
	s.pause()
	for sim.Active() {
		sim.Step()
		if err := render.WriteFrame(s.out, sim.Snapshot()); err != nil {
			return err
		}
		s.pause()
	}

	snap := sim.Snapshot()
	fmt.Fprintf(s.out, "Fire burnt out after %d steps: %d burnt, %d trees left.\n",
		snap.Generation, snap.Counts.Burnt, snap.Counts.Tree)
	return nil
}

func (s *Session) askRestart() (bool, error) {
	for {
		answer, ok := s.readLine("Simulation finished. Would you like to restart? Y/N ")
		if !ok {
			return false, s.in.Err()
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			fmt.Fprintln(s.out)
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// parseChance keeps unparsable answers out of range so normalization
// replaces them with the default.
func (s *Session) parseChance(answer string) string {
	if _, err := strconv.Atoi(answer); err != nil {
		if answer != "" {
			s.logger.Printf("catch chance %q is not a number", answer)
		}
		return "-1"
	}
	return answer
}

func (s *Session) parseDirection(what, answer string) string {
	d, ok := wildfire.ParseDirection(answer)
	if !ok && answer != "" {
		s.logger.Printf("unknown %s %q, using %s", what, answer, wildfire.Centre)
	}
	return strconv.Itoa(int(d))
}

func (s *Session) prompt(text string) string {
	answer, _ := s.readLine(text)
	return answer
}

func (s *Session) readLine(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if s.closed {
		return "", false
	}
	if !s.in.Scan() {
		s.closed = true
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) pause() {
	if s.cfg.Auto || s.closed {
		return
	}
	s.readLine("Press Enter to continue...")
}
