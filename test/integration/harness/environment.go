package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own MUXDECK_HOME.
type TestEnvironment struct {
	Backend     *FakeBackend
	MuxdeckHome string
	extraEnv    map[string]string
	stdin       string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp MUXDECK_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		MuxdeckHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// NewBackendEnvironment creates an isolated environment wired to a fresh FakeBackend.
func NewBackendEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := NewTestEnvironment(tb)
	env.Backend = NewFakeBackend(tb)
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out MUXDECK_* variables and sets:
//   - MUXDECK_HOME to the temp directory
//   - MUXDECK_DEBUG to empty string (disables debug logging)
//   - MUXDECK_BACKEND_URL to the fake backend, if any
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "MUXDECK_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"MUXDECK_HOME="+e.MuxdeckHome,
		"MUXDECK_DEBUG=",
	)
	if e.Backend != nil {
		env = append(env, "MUXDECK_BACKEND_URL="+e.Backend.URL())
	}

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.MuxdeckHome, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.MuxdeckHome, "settings.json")
}

// WriteSettings writes raw JSON to the test settings file.
func (e *TestEnvironment) WriteSettings(json string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(json), 0600); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// SetStdin sets what the next commands read from stdin.
func (e *TestEnvironment) SetStdin(input string) {
	e.stdin = input
}
