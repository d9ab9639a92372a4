package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the settings that may come from the environment.
type envConfig struct {
	SaveFile   string `env:"KWAZAM_SAVE_FILE" envDefault:"Saved_game.txt"`
	ResultsDir string `env:"KWAZAM_RESULTS_DIR"`
	Verbosity  int    `env:"KWAZAM_VERBOSITY" envDefault:"1"`
}

// LoadEnv overlays environment settings onto cfg and validates the result.
func LoadEnv(cfg *Config) error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	cfg.SaveFile = e.SaveFile
	cfg.ResultsDir = e.ResultsDir
	cfg.Verbosity = e.Verbosity
	return cfg.Validate()
}
