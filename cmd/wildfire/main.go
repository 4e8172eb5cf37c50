package main

import (
	"flag"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/app"
	"wildfire-ca/internal/core"
	_ "wildfire-ca/internal/sims/wildfire"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.MarkSet(flag.CommandLine)

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		names := make([]string, 0, len(core.Sims()))
		for name := range core.Sims() {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(names, ", "))
	}

	if !cfg.TUI {
		session := app.NewSession(cfg, factory, os.Stdin, os.Stdout, log.Default())
		if err := session.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	if cfg.Seed == 0 {
		cfg.Seed = core.TimeSeed()
	}
	log.Printf("seed %d", cfg.Seed)

	sim, err := app.Build(factory, cfg.SimParams())
	if err != nil {
		log.Fatal(err)
	}
	for _, note := range app.Notes(sim) {
		log.Print(note)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	viewer := app.NewViewer(screen, sim, cfg.TPS, cfg.Seed)
	err = viewer.Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
