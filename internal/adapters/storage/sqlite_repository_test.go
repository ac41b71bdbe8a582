package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestLoadPreferences_UnknownProfileHasDefaults(t *testing.T) {
	repo := newTestRepo(t)

	prefs, err := repo.LoadPreferences(context.Background(), domain.DefaultProfile)

	require.NoError(t, err)
	assert.Equal(t, 1.0, prefs.Zoom)
	assert.Empty(t, prefs.ScopeHostID)
	assert.NotNil(t, prefs.LastActive)
	assert.Empty(t, prefs.LastActive)
}

func TestSavePreferences_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	err := repo.SavePreferences(ctx, domain.DefaultProfile, domain.Preferences{
		LastActive:  map[string]string{"local": "build", "srv1": "api", "srv2": ""},
		ScopeHostID: "srv1",
		Zoom:        1.3,
	})
	require.NoError(t, err)

	prefs, err := repo.LoadPreferences(ctx, domain.DefaultProfile)
	require.NoError(t, err)
	assert.Equal(t, "srv1", prefs.ScopeHostID)
	assert.Equal(t, 1.3, prefs.Zoom)
	assert.Equal(t, map[string]string{"local": "build", "srv1": "api"}, prefs.LastActive)
}

func TestSavePreferences_ReplacesSelections(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.SavePreferences(ctx, "p", domain.Preferences{
		LastActive: map[string]string{"local": "build", "srv1": "api"},
		Zoom:       1.0,
	}))
	require.NoError(t, repo.SavePreferences(ctx, "p", domain.Preferences{
		LastActive:  map[string]string{"local": "test"},
		ScopeHostID: "local",
		Zoom:        0.8,
	}))

	prefs, err := repo.LoadPreferences(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"local": "test"}, prefs.LastActive)
	assert.Equal(t, 0.8, prefs.Zoom)
	assert.Equal(t, "local", prefs.ScopeHostID)
}

func TestSavePreferences_ProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.SavePreferences(ctx, "alice", domain.Preferences{
		LastActive: map[string]string{"local": "a"},
		Zoom:       1.5,
	}))
	require.NoError(t, repo.SavePreferences(ctx, "bob", domain.Preferences{
		LastActive: map[string]string{"local": "b"},
	}))

	alice, err := repo.LoadPreferences(ctx, "alice")
	require.NoError(t, err)
	bob, err := repo.LoadPreferences(ctx, "bob")
	require.NoError(t, err)

	assert.Equal(t, "a", alice.LastActive["local"])
	assert.Equal(t, "b", bob.LastActive["local"])
	assert.Equal(t, 1.0, bob.Zoom, "zero zoom is stored as the default")

	profiles, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, profiles)
}

func TestDeletePreferences(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.SavePreferences(ctx, "p", domain.Preferences{
		LastActive: map[string]string{"local": "a"},
		Zoom:       1.2,
	}))

	require.NoError(t, repo.DeletePreferences(ctx, "p"))

	prefs, err := repo.LoadPreferences(ctx, "p")
	require.NoError(t, err)
	assert.Empty(t, prefs.LastActive)
	assert.Equal(t, 1.0, prefs.Zoom)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewSQLiteRepositoryForPath(dir)
	require.NoError(t, err)
	require.NoError(t, repo.SavePreferences(ctx, "p", domain.Preferences{ScopeHostID: "srv1", Zoom: 1.1}))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepositoryForPath(dir)
	require.NoError(t, err)
	defer repo.Close()

	prefs, err := repo.LoadPreferences(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "srv1", prefs.ScopeHostID)
}
