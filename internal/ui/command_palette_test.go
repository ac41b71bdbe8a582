package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/config"
	"github.com/renato0307/muxdeck/internal/domain"
)

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, fuzzyMatch("zin", "Zoom in"))
	assert.True(t, fuzzyMatch("", "anything"))
	assert.False(t, fuzzyMatch("zz", "Zoom in"))
}

func TestCommandPalette_FilterAndSelect(t *testing.T) {
	cp := NewCommandPalette("local:build", NewKeyMap(nil))
	for _, r := range "refresh" {
		cp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.NotEmpty(t, cp.actions)

	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, cp.Completed)
	require.NotNil(t, cp.Result.Action)
	assert.Equal(t, "refresh", cp.Result.Action.Name)
}

func TestCommandPalette_Cancel(t *testing.T) {
	cp := NewCommandPalette("", NewKeyMap(nil))

	cp.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, cp.Completed)
	assert.True(t, cp.Result.Cancelled)
	assert.Nil(t, cp.Result.Action)
}

func paletteNames(cp *CommandPalette) []string {
	names := make([]string, 0, len(cp.actions))
	for _, def := range cp.actions {
		names = append(names, def.Name)
	}
	return names
}

func TestCommandPalette_SessionActionsNeedASession(t *testing.T) {
	without := paletteNames(NewCommandPalette("", NewKeyMap(nil)))
	with := paletteNames(NewCommandPalette("local:build", NewKeyMap(nil)))

	for _, name := range []string{"kill", "rename", "open_browser"} {
		assert.NotContains(t, without, name)
		assert.Contains(t, with, name)
	}
	assert.Contains(t, without, "new_session")
}

func TestCommandPalette_ShowsCustomShortcut(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"refresh": {"ctrl+r"}})
	cp := NewCommandPalette("", keys)

	assert.Contains(t, cp.View(), "ctrl+r")
	assert.Equal(t, "R", NewKeyMap(nil).Shortcut("refresh"))
}

func TestActionDispatcher(t *testing.T) {
	active := domain.NewSessionKey("srv1", "api")
	kill := *GetKeyDefinition("kill")

	msg := NewActionDispatcher(active, true).Dispatch(kill)
	assert.Equal(t, KillSessionMsg{Key: active}, msg)

	assert.Nil(t, NewActionDispatcher(domain.SessionKey{}, false).Dispatch(kill))
	assert.Equal(t, RefreshMsg{}, NewActionDispatcher(domain.SessionKey{}, false).Dispatch(*GetKeyDefinition("refresh")))
}
