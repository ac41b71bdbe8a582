package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, env.SettingsPath())
	harness.AssertStdoutContains(t, result, "backend_url")
	harness.AssertStdoutContains(t, result, "refresh_interval")
}

func TestSettingsMeta_JSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "meta", "--format", "json")

	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "settings_file", env.SettingsPath())
}

func TestSettingsKeys(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults when no settings",
			args:         []string{"settings", "keys"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "kill")
				harness.AssertStdoutContains(t, result, "zoom_in")
				harness.AssertStdoutContains(t, result, "+, =")
			},
		},
		{
			name:         "set valid key",
			args:         []string{"settings", "keys", "set", "kill", "X"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'kill' to: X")

				list := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")
				var keys map[string]map[string]any
				harness.AssertValidJSON(t, list, &keys)
				require.Contains(t, keys, "kill")
				assert.Equal(t, "X", keys["kill"]["custom"])
				assert.Equal(t, "kill session", keys["kill"]["help"])
			},
		},
		{
			name:         "set multiple keys with comma",
			args:         []string{"settings", "keys", "set", "up", "up, k ,w"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'up' to: up, k, w")
			},
		},
		{
			name:         "set invalid key name",
			args:         []string{"settings", "keys", "set", "archive", "a"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown key")
			},
		},
		{
			name: "set conflicting key fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "rename", "z"))
			},
			args:         []string{"settings", "keys", "set", "kill", "z"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "conflict")
			},
		},
		{
			name: "invalid bindings in settings stop the TUI",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteSettings(`{"keys": {"nope": "x"}}`)
			},
			args:         []string{"run"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "invalid key bindings")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSettingsEdit(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetEnv("MUXDECK_EDITOR", "true")

	result := harness.RunCommand(t, env, "settings", "edit")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Settings saved")
	assert.FileExists(t, env.SettingsPath())
}

func TestSettingsEdit_InvalidResult(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"keys": {"kill": "x", "rename": "x"}}`)

	result := harness.RunCommand(t, env, "settings", "edit", "--editor", "true")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "key bindings are not valid")
}
