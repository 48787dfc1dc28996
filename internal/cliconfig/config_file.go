package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type FileConfig struct {
	GrainSeconds  float64 `toml:"grain_seconds"`
	CaseRate      int     `toml:"case_rate"`
	ViewWidth     int     `toml:"view_width"`
	ViewHeight    int     `toml:"view_height"`
	StateDir      string  `toml:"state_dir"`
	Follow        *bool   `toml:"follow"`
	DebounceDelay string  `toml:"debounce_delay"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path,
// ~/.grainview/config.toml, if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".grainview", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setFloat("grain-seconds", fc.GrainSeconds, &cfg.GrainSeconds)
	s.setInt("case-rate", fc.CaseRate, &cfg.CaseRate)
	s.setInt("width", fc.ViewWidth, &cfg.ViewWidth)
	s.setInt("height", fc.ViewHeight, &cfg.ViewHeight)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)
	s.setBool("follow", fc.Follow, &cfg.Follow)

	return s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
