package integration_test

import (
	"testing"

	"github.com/renato0307/muxdeck/test/integration/harness"
)

func TestVersion(t *testing.T) {
	if harness.Prebuilt() {
		t.Skip("prebuilt binary has its own version")
	}
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "muxdeck "+harness.BuildVersion)
}

func TestHelp(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--help")

	harness.AssertSuccess(t, result)
	for _, cmd := range []string{"serve", "attach", "hosts", "sessions", "settings"} {
		harness.AssertStdoutContains(t, result, cmd)
	}
}
