package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/test/integration/harness"
)

func TestHosts(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "add with defaults",
			args:         []string{"hosts", "add", "gpu-box"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Host 'gpu-box' added with id h1")

				hosts := harness.ListJSON(t, env, "hosts", "list")
				require.Len(t, hosts, 1)
				assert.Equal(t, float64(22), hosts[0]["port"])
				assert.Equal(t, true, hosts[0]["enabled"])
			},
		},
		{
			name:         "add without hostname fails",
			args:         []string{"hosts", "add", "  "},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "hostname is required")
			},
		},
		{
			name: "list table",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Backend.AddRemoteHost("gpu-box")
			},
			args:         []string{"hosts"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "gpu-box:22")
				harness.AssertStdoutContains(t, result, "Total: 1 hosts")
			},
		},
		{
			name: "update keeps unset fields",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Backend.AddRemoteHost("gpu-box")
			},
			args:         []string{"hosts", "update", "h1", "--port", "2222", "--disable"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				hosts := harness.ListJSON(t, env, "hosts", "list")
				require.Len(t, hosts, 1)
				assert.Equal(t, "gpu-box", hosts[0]["hostname"])
				assert.Equal(t, float64(2222), hosts[0]["port"])
				assert.Equal(t, false, hosts[0]["enabled"])
			},
		},
		{
			name: "disabled host sessions leave the list",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				id := env.Backend.AddRemoteHost("gpu-box")
				env.Backend.AddSession(id, "train")
				harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "update", id, "--disable"))
			},
			args:         []string{"sessions", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutNotContains(t, result, "train")
			},
		},
		{
			name:         "enable and disable together fail",
			args:         []string{"hosts", "update", "h1", "--enable", "--disable"},
			wantExitCode: 1,
		},
		{
			name:         "local host cannot be changed",
			args:         []string{"hosts", "update", "local", "--port", "2222"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "local host cannot be changed")
			},
		},
		{
			name:         "update unknown host fails",
			args:         []string{"hosts", "update", "h9", "--port", "2222"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "host not found")
			},
		},
		{
			name: "force delete",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Backend.AddRemoteHost("gpu-box")
			},
			args:         []string{"hosts", "delete", "h1", "-f"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Host 'gpu-box' deleted successfully")
				assert.Equal(t, 0, env.Backend.HostCount())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewBackendEnvironment(t)

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

func TestHostsImportExport(t *testing.T) {
	env := harness.NewBackendEnvironment(t)
	env.Backend.AddRemoteHost("gpu-box")

	file := filepath.Join(t.TempDir(), "hosts.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`version: 1
hosts:
  - hostname: gpu-box
  - name: build farm
    hostname: build.internal
    port: 2200
    username: ci
`), 0644))

	result := harness.RunCommand(t, env, "hosts", "import", file)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "added    build farm")
	harness.AssertStdoutContains(t, result, "skipped  gpu-box")
	assert.Equal(t, 2, env.Backend.HostCount())

	out := filepath.Join(t.TempDir(), "export", "hosts.yaml")
	result = harness.RunCommand(t, env, "hosts", "export", out)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Exported 2 hosts")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "build.internal")
	assert.Contains(t, string(data), "port: 2200")
}

func TestHostsImport_InvalidFile(t *testing.T) {
	env := harness.NewBackendEnvironment(t)

	file := filepath.Join(t.TempDir(), "hosts.yaml")
	require.NoError(t, os.WriteFile(file, []byte("hosts:\n  - name: broken\n"), 0644))

	result := harness.RunCommand(t, env, "hosts", "import", file)

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "hostname is required")
	assert.Equal(t, 0, env.Backend.HostCount())
}
