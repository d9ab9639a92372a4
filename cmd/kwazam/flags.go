// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/kwazam-go/internal/config"
)

var (
	// Game files
	loadFile = flag.String("load", "", "Start from this save file")
	saveFile = flag.String("save", "", "Default file for save and load commands (default: $KWAZAM_SAVE_FILE or Saved_game.txt)")

	// Input and output
	scriptFile = flag.String("script", "", "Read commands from this file instead of stdin")
	jsonOutput = flag.Bool("json", false, "Print board snapshots as JSON")
	resultsDir = flag.String("results", "", "Results database directory (default: $KWAZAM_RESULTS_DIR or the user data directory)")
	noResults  = flag.Bool("noresults", false, "Do not record finished games")

	// Diagnostics
	quiet     = flag.Bool("q", false, "Quiet mode: no diagnostics")
	verbosity = flag.Int("v", -1, "Verbosity 0-2 (default: $KWAZAM_VERBOSITY or 1)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overlays command-line flags on cfg. Flags win over the
// environment.
func applyFlags(cfg *config.Config) {
	if *saveFile != "" {
		cfg.SaveFile = *saveFile
	}
	if *resultsDir != "" {
		cfg.ResultsDir = *resultsDir
	}
	cfg.JSONFormat = *jsonOutput

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbosity >= 0:
		cfg.Verbosity = *verbosity
	}
}
