package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_UnmarshalBothForms(t *testing.T) {
	var cfg KeyBindingsConfig
	require.NoError(t, json.Unmarshal([]byte(`{"refresh":"r","help":["H","?"],"quit":""}`), &cfg))

	assert.Equal(t, KeyBindingValue{"r"}, cfg["refresh"])
	assert.Equal(t, KeyBindingValue{"H", "?"}, cfg["help"])
	assert.Empty(t, cfg["quit"])

	out, err := json.Marshal(cfg["refresh"])
	require.NoError(t, err)
	assert.Equal(t, `"r"`, string(out))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"refresh", "help", "zoom_in"}

	assert.NoError(t, KeyBindingsConfig(nil).Validate(valid))
	assert.NoError(t, KeyBindingsConfig{"refresh": {"R"}, "help": {}}.Validate(valid))
	assert.ErrorContains(t, KeyBindingsConfig{"archive": {"A"}}.Validate(valid), "unknown key binding")
	assert.ErrorContains(t, KeyBindingsConfig{"refresh": {""}}.Validate(valid), "empty value")
	assert.ErrorContains(t, KeyBindingsConfig{"refresh": {"x"}, "zoom_in": {"x"}}.Validate(valid), "key 'x' is assigned to both 'refresh' and 'zoom_in'")
}

func TestStringArray_CommaSeparated(t *testing.T) {
	var s struct {
		Headers StringArray `json:"headers"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"headers":"a=1, b=2 ,"}`), &s))

	assert.Equal(t, StringArray{"a=1", "b=2"}, s.Headers)
	assert.Equal(t, "a=1,b=2", s.Headers.String())
}

func TestLoadSettingsFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"backend_url": "https://tmux.example.com/ ",
		"db_path": "~/muxdeck.db",
		"debug": true,
		"refresh_interval": 30,
		"otel_headers": "authorization=Bearer x"
	}`), 0644))

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "https://tmux.example.com", settings.BackendURL)
	assert.NotContains(t, settings.DBPath, "~")
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.RefreshInterval)
	assert.Equal(t, 30, *settings.RefreshInterval)
	assert.Equal(t, StringArray{"authorization=Bearer x"}, settings.OtelHeaders)
}

func TestLoadSettingsFrom_MissingFile(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debug": "maybe"}`), 0644))

	_, err := LoadSettingsFrom(path)

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings(t *testing.T) {
	t.Setenv("MUXDECK_HOME", t.TempDir())
	delay := 5

	require.NoError(t, SaveSettings(&Settings{BackendURL: "http://h:1", ErrorClearDelay: &delay}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://h:1", settings.BackendURL)
	assert.Equal(t, 5, *settings.ErrorClearDelay)
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, DefaultBackendURL, example["backend_url"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, DefaultRefreshInterval, example["refresh_interval"])
	assert.Contains(t, example, "keys")
	assert.Len(t, example, 16)
}
