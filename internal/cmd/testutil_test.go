package cmd

import (
	"os"
	"testing"

	"github.com/renato0307/muxdeck/internal/domain"
)

// unsetEnv removes keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func hostFixture() domain.Host {
	return domain.Host{
		Enabled:  true,
		Hostname: "gpu-box",
		ID:       "h1",
		Name:     "GPU",
		Port:     22,
		Username: "ops",
	}
}
