package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFiles(t *testing.T, dir string, n int) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%02d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
}

func TestRotateLogs_RemovesOldestToMakeRoom(t *testing.T) {
	dir := t.TempDir()
	writeLogFiles(t, dir, 5)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"03.log", "04.log", "keep.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	writeLogFiles(t, dir, 2)

	require.NoError(t, rotateLogs(dir, 10))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestInitialize_CustomFile(t *testing.T) {
	t.Setenv(envDebug, "")
	t.Setenv(envDebugFile, "")
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	got, err := Initialize(false, path, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	Logger.Info("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestInitialize_DiscardWhenDisabled(t *testing.T) {
	t.Setenv(envDebug, "")
	t.Setenv(envDebugFile, "")

	got, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, Logger)
}
