// Package config provides configuration for the Kwazam engine and its
// terminal front end.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/kwazam-go/internal/errors"
)

// DefaultSaveFile is the save file used when none is configured.
const DefaultSaveFile = "Saved_game.txt"

// Verbosity levels.
const (
	Silent     = 0 // nothing on the log
	Warnings   = 1 // skipped save lines, failed loads
	Commentary = 2 // running commentary: captures, transformations, turns
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// SaveFile is the default path for save and load commands.
	SaveFile string

	// ResultsDir is the directory of the results store. Empty selects the
	// platform data directory.
	ResultsDir string

	// JSONFormat prints board snapshots as JSON instead of a diagram.
	JSONFormat bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Warnings,
		SaveFile:   DefaultSaveFile,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.SaveFile == "" {
		return fmt.Errorf("empty save file path: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
