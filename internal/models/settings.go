package models

import "time"

// HeadlessConfig holds settings for runs without a terminal UI.
type HeadlessConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark"
}

// Settings represents global application settings.
// This corresponds to ~/.threatsim/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	Scenario   string           `yaml:"scenario,omitempty"` // empty = ~/.threatsim/scenario.yaml or built-in
	Headless   HeadlessConfig   `yaml:"headless"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Headless: HeadlessConfig{
			Duration: 7 * time.Second,
		},
		Appearance: AppearanceConfig{
			Theme: "system",
		},
	}
}
