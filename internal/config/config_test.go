package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4skforce/threatsim/internal/models"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	withHome(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), s)
}

func TestLoadSettingsKeepsDefaultsForOmittedFields(t *testing.T) {
	home := withHome(t)
	path := filepath.Join(home, GlobalDirName, SettingsFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("appearance:\n  theme: dark\n"), 0644))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", s.Appearance.Theme)
	assert.Equal(t, 7*time.Second, s.Headless.Duration)
}

func TestSaveAndLoadSettings(t *testing.T) {
	withHome(t)

	s := models.NewSettings()
	s.Scenario = "/tmp/demo.yaml"
	s.Headless.Duration = 12 * time.Second
	require.NoError(t, SaveSettings(s))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadScenarioValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed:\n  capacity: 0\n"), 0644))

	_, err := LoadScenario(path)
	assert.ErrorIs(t, err, models.ErrInvalidScenario)

	_, err = LoadScenario(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveScenarioPriority(t *testing.T) {
	home := withHome(t)

	sc, source, err := ResolveScenario("", models.NewSettings())
	require.NoError(t, err)
	assert.Equal(t, BuiltinScenario, source)
	assert.Equal(t, models.NewScenario(), sc)

	global := filepath.Join(home, GlobalDirName, ScenarioFileName)
	globalScenario := models.NewScenario()
	globalScenario.Name = "global"
	require.NoError(t, SaveScenario(global, globalScenario))

	sc, source, err = ResolveScenario("", nil)
	require.NoError(t, err)
	assert.Equal(t, global, source)
	assert.Equal(t, "global", sc.Name)

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	explicitScenario := models.NewScenario()
	explicitScenario.Name = "explicit"
	require.NoError(t, SaveScenario(explicit, explicitScenario))

	settings := models.NewSettings()
	settings.Scenario = global
	sc, source, err = ResolveScenario(explicit, settings)
	require.NoError(t, err)
	assert.Equal(t, explicit, source)
	assert.Equal(t, "explicit", sc.Name)
}

func TestScenarioRoundTripsThroughYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, SaveScenario(path, models.NewScenario()))

	loaded, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, models.NewScenario(), loaded)
}
