// Package config provides YAML-based game configuration loading for the
// panel arcade.
package config

import "fmt"

// PanelConfig contains all configuration for the panel puzzle.
type PanelConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Field    FieldConfig    `yaml:"field"`
	Input    InputConfig    `yaml:"input"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// TimingConfig holds the animation durations, in ticks.
// Clear animations last Flash + Face + Pop*blocks.
type TimingConfig struct {
	Flash int `yaml:"flash"`
	Face  int `yaml:"face"`
	Pop   int `yaml:"pop"`
	Swap  int `yaml:"swap"`
}

// FieldConfig defines how a fresh field is generated and where the cursor starts.
type FieldConfig struct {
	StartRows  int `yaml:"start_rows"` // Rows filled by the kind generator
	Categories int `yaml:"categories"` // Number of distinct block kinds
	CursorX    int `yaml:"cursor_x"`
	CursorY    int `yaml:"cursor_y"`
}

// InputConfig tunes edge detection.
type InputConfig struct {
	RepeatDelay int `yaml:"repeat_delay"` // Held ticks before auto-repeat kicks in
}

// GameplayConfig holds mode parameters.
type GameplayConfig struct {
	TimeAttackSeconds int `yaml:"time_attack_seconds"`
}

// Validate checks that the config can drive a round.
func (c PanelConfig) Validate() error {
	if c.Timing.Flash < 0 || c.Timing.Face < 0 || c.Timing.Pop < 0 {
		return fmt.Errorf("config: clear timings must not be negative")
	}
	if c.Timing.Swap <= 0 {
		return fmt.Errorf("config: swap time must be positive, got %d", c.Timing.Swap)
	}
	if c.Field.Categories < 2 {
		return fmt.Errorf("config: need at least 2 block categories, got %d", c.Field.Categories)
	}
	if c.Field.StartRows < 0 {
		return fmt.Errorf("config: start_rows must not be negative, got %d", c.Field.StartRows)
	}
	if c.Input.RepeatDelay < 1 {
		return fmt.Errorf("config: repeat_delay must be at least 1, got %d", c.Input.RepeatDelay)
	}
	if c.Gameplay.TimeAttackSeconds <= 0 {
		return fmt.Errorf("config: time_attack_seconds must be positive, got %d", c.Gameplay.TimeAttackSeconds)
	}
	return nil
}
