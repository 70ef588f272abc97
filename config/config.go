package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the boxes viewer settings. Paths may start with ~.
type Config struct {
	// Title names the session in logs and in the -dump header.
	Title string `yaml:"title"`
	// Layout is a YAML container tree; empty means the built-in demo.
	Layout string `yaml:"layout"`
	// Stylesheet is a YAML rule list applied to Layout.
	Stylesheet string `yaml:"stylesheet"`
	// LogFile receives the log once the terminal is taken over; empty
	// discards it.
	LogFile string `yaml:"log_file"`
	// QuitKey is a single character or a tcell key name such as "Esc".
	QuitKey string `yaml:"quit_key"`
}

// DefaultConfig shows the demo, quits on q and discards the log.
func DefaultConfig() *Config {
	return &Config{
		Title:   "boxes",
		QuitKey: "q",
	}
}

// Load reads the configuration from path, or from ConfigPath when path is
// empty. Falls back to defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Layout = expandPath(cfg.Layout)
	cfg.Stylesheet = expandPath(cfg.Stylesheet)
	cfg.LogFile = expandPath(cfg.LogFile)

	// blank values keep the defaults
	if cfg.QuitKey == "" {
		cfg.QuitKey = "q"
	}
	if cfg.Title == "" {
		cfg.Title = "boxes"
	}

	return cfg, nil
}

// expandPath resolves a leading ~ in the file settings against the home
// directory.
func expandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, path[1:])
}

// ConfigPath is where Load looks when no path is given:
// boxes/config.yaml under the user config directory, ~/.config when that
// is unknown.
func ConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "boxes", "config.yaml")
}
