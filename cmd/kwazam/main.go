// kwazam is a terminal front end for the Kwazam chess variant.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/kwazam-go/internal/config"
	"github.com/lgbarn/kwazam-go/internal/engine"
	"github.com/lgbarn/kwazam-go/internal/results"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("kwazam version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error in environment: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(play(cfg))
}

// play runs the game session and returns the exit code.
func play(cfg *config.Config) int {
	store := openResults(cfg)
	if store != nil {
		defer store.Close()
	}

	game := engine.NewGame(cfg)
	if *loadFile != "" {
		// Load reports its own diagnostics; a missing Sau still leaves a
		// playable standard game.
		game.Load(*loadFile) //nolint:errcheck // logged by the engine
	}

	input, interactive, err := openInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening script %s: %v\n", *scriptFile, err)
		return 1
	}
	defer input.Close()

	s := newSession(cfg, game, store)
	s.interactive = interactive
	if err := s.run(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openResults opens the results store unless disabled. Failure only loses
// the tally, so it is reported and play continues.
func openResults(cfg *config.Config) *results.Store {
	if *noResults {
		return nil
	}
	store, err := results.Open(cfg.ResultsDir)
	if err != nil {
		cfg.Logf(config.Warnings, "Results will not be recorded: %v", err)
		return nil
	}
	return store
}

// openInput returns the command source and whether it is the terminal.
func openInput() (io.ReadCloser, bool, error) {
	if *scriptFile == "" {
		return io.NopCloser(os.Stdin), true, nil
	}
	file, err := os.Open(*scriptFile)
	if err != nil {
		return nil, false, err
	}
	return file, false, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: kwazam [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play Kwazam chess in the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}
