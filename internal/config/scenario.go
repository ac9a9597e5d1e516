package config

import (
	"fmt"

	"github.com/t4skforce/threatsim/internal/models"
)

// BuiltinScenario is the source name reported when no scenario file is used.
const BuiltinScenario = "built-in"

// LoadScenario reads and validates the scenario file at path.
func LoadScenario(path string) (*models.Scenario, error) {
	var sc models.Scenario
	if err := LoadYAML(path, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

// SaveScenario writes sc to path.
func SaveScenario(path string, sc *models.Scenario) error {
	return SaveYAML(path, sc)
}

// ResolveScenario picks the scenario to run, in priority order: the explicit
// path, the path from settings, ~/.threatsim/scenario.yaml if present, then
// the built-in scenario. It returns the scenario and the path it came from,
// or BuiltinScenario.
func ResolveScenario(explicit string, settings *models.Settings) (*models.Scenario, string, error) {
	path := explicit
	if path == "" && settings != nil {
		path = settings.Scenario
	}
	if path == "" {
		global, err := GlobalScenarioFile()
		if err == nil && FileExists(global) {
			path = global
		}
	}
	if path == "" {
		return models.NewScenario(), BuiltinScenario, nil
	}

	sc, err := LoadScenario(path)
	if err != nil {
		return nil, "", err
	}
	return sc, path, nil
}
