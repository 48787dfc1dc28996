package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (GRAINVIEW_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any environment variable has an invalid
// format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setFloatFromString("grain-seconds", os.Getenv("GRAINVIEW_GRAIN_SECONDS"), &cfg.GrainSeconds); err != nil {
		return err
	}
	if err := s.setIntFromString("case-rate", os.Getenv("GRAINVIEW_CASE_RATE"), &cfg.CaseRate); err != nil {
		return err
	}
	if err := s.setIntFromString("width", os.Getenv("GRAINVIEW_VIEW_WIDTH"), &cfg.ViewWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("height", os.Getenv("GRAINVIEW_VIEW_HEIGHT"), &cfg.ViewHeight); err != nil {
		return err
	}

	s.setString("state-dir", os.Getenv("GRAINVIEW_STATE_DIR"), &cfg.StateDir)
	s.setBoolFromString("follow", os.Getenv("GRAINVIEW_FOLLOW"), &cfg.Follow)

	return s.setDuration("debounce", os.Getenv("GRAINVIEW_DEBOUNCE_DELAY"), &cfg.DebounceDelay)
}
