package multiplexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
)

func TestSelection_SelectHostRestoresRemembered(t *testing.T) {
	s := NewSelection()
	s.SelectSession(keyB)

	key, ok := s.SelectHost("b")
	assert.False(t, ok)
	assert.True(t, key.IsZero())
	_, active := s.Active()
	assert.False(t, active)
	assert.Equal(t, "b", s.Scope())

	key, ok = s.SelectHost("a")
	require.True(t, ok)
	assert.Equal(t, keyB, key)
	got, _ := s.Active()
	assert.Equal(t, keyB, got)
}

func TestSelection_SelectSessionMovesScope(t *testing.T) {
	s := NewSelection()
	s.SelectHost("a")

	s.SelectSession(keyC)

	assert.Equal(t, "b", s.Scope())
	got, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, keyC, got)
}

func TestSelection_Renamed(t *testing.T) {
	s := NewSelection()
	s.SelectSession(keyA)

	s.Renamed(keyA, "release")

	got, _ := s.Active()
	assert.Equal(t, domain.NewSessionKey("a", "release"), got)
	assert.Equal(t, map[string]string{"a": "release"}, s.LastActive())
}

func TestSelection_RenamedOtherSessionKeepsActive(t *testing.T) {
	s := NewSelection()
	s.SelectSession(keyA)

	s.Renamed(keyB, "other")

	got, _ := s.Active()
	assert.Equal(t, keyA, got)
	assert.Equal(t, "build", s.LastActive()["a"])
}

func TestSelection_Deleted(t *testing.T) {
	s := NewSelection()
	s.SelectSession(keyA)

	s.Deleted(keyA)

	_, ok := s.Active()
	assert.False(t, ok)
	_, ok = s.Remembered("a")
	assert.False(t, ok)
}

func TestSelection_Restore(t *testing.T) {
	s := NewSelection()
	s.Restore("b", map[string]string{"a": "build", "b": "test", "c": ""})

	got, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, keyC, got)
	assert.Equal(t, map[string]string{"a": "build", "b": "test"}, s.LastActive())
}

func TestFallbackScope(t *testing.T) {
	list := sessions("a", "build", "b", "test")

	_, change := FallbackScope("a", list)
	assert.False(t, change)

	next, change := FallbackScope("gone", list)
	assert.True(t, change)
	assert.Equal(t, "a", next)

	next, change = FallbackScope("", list)
	assert.True(t, change)
	assert.Equal(t, "a", next)

	_, change = FallbackScope("a", nil)
	assert.False(t, change)
}
