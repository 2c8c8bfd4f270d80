package config

import (
	_ "embed"
)

//go:embed defaults/panel.yaml
var defaultPanelYAML []byte

// DefaultPanelConfig returns the default panel configuration.
func DefaultPanelConfig() PanelConfig {
	return PanelConfig{
		Timing: TimingConfig{
			Flash: 44,
			Face:  10,
			Pop:   10,
			Swap:  3,
		},
		Field: FieldConfig{
			StartRows:  5,
			Categories: 8,
			CursorX:    2,
			CursorY:    5,
		},
		Input: InputConfig{
			RepeatDelay: 16,
		},
		Gameplay: GameplayConfig{
			TimeAttackSeconds: 120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPanelYAML
}
