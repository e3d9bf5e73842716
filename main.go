package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"pcbdraw/board"
	"pcbdraw/config"
	"pcbdraw/core"
	"pcbdraw/terminal"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath(), "Settings file")
		logFile    = flag.String("log", "", "Append a debug log to this file")
		footprint  = flag.String("footprint", "", "Edit a new footprint with this reference instead of a board")
		help       = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Draw board graphics, texts, dimensions and zones in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                       # Draw on an empty board\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -footprint U1         # Draw a footprint\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -log pcbdraw.log      # Keep a debug log\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPress ? in the editor for the key bindings.\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if err := run(*configPath, *logFile, *footprint); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logFile, reference string) error {
	out := io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(configPath)
	if err != nil {
		// A broken settings file should not keep the editor from starting.
		log.Printf("%v, using defaults", err)
	}

	b, err := cfg.NewBoard()
	if err != nil {
		return err
	}

	opts := terminal.Options{ConfigPath: configPath}
	if reference != "" {
		fp, err := addFootprint(b, reference)
		if err != nil {
			return err
		}
		opts.Footprint = fp
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	app := terminal.New(screen, b, cfg, opts)
	app.SetLogger(log.New(out, "terminal: ", log.LstdFlags))
	app.Tool().SetLogger(log.New(out, "drawing: ", log.LstdFlags))
	app.Run()
	return nil
}

// addFootprint places an empty footprint at the origin for the editor to
// draw into.
func addFootprint(b *board.Board, reference string) (core.ItemID, error) {
	fp := core.NewFootprintShape(core.Point{}, reference)
	c := b.NewCommit()
	c.Add(fp)
	if err := c.Push("Add footprint " + reference); err != nil {
		return core.NoItem, err
	}
	return fp.ID, nil
}
