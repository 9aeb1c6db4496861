package game

import "os"

// DefaultLevel is played when no level is configured.
const DefaultLevel = "snake"

// Config holds game configuration options.
type Config struct {
	// Level is the ID of the level to play, from the embedded levels.json.
	Level string
}

// ConfigFromEnv reads the configuration from LABYRINTH_LEVEL.
func ConfigFromEnv() Config {
	cfg := Config{Level: os.Getenv("LABYRINTH_LEVEL")}
	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}
	return cfg
}
