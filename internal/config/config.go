package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all chatmark configuration.
type Config struct {
	User  string `toml:"user"`  // fixed user identifier; "" = detect per document
	Agent string `toml:"agent"` // agent speaker token

	Watch WatchConfig `toml:"watch"`
}

type WatchConfig struct {
	DebounceMS int      `toml:"debounce_ms"`
	Extensions []string `toml:"extensions"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Agent: "GitHub Copilot",
		Watch: WatchConfig{
			DebounceMS: 500,
			Extensions: []string{".md", ".txt", ".zst"},
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "chatmark", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "chatmark", "config.toml"))
	}

	return paths
}
