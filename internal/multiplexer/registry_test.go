package multiplexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
)

var (
	keyA = domain.NewSessionKey("a", "build")
	keyB = domain.NewSessionKey("a", "test")
	keyC = domain.NewSessionKey("b", "test")
)

func TestRegistry_RegisterIsIdempotentAndScales(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1.4)

	first := newSurface(log, keyA)
	require.True(t, r.Register(&Resource{Key: keyA, Surface: first, TerminalID: "1"}))
	assert.Equal(t, 1.4, first.scale)
	assert.False(t, first.visible)

	second := newSurface(log, keyA)
	assert.False(t, r.Register(&Resource{Key: keyA, Surface: second, TerminalID: "2"}))

	res, ok := r.Get(keyA)
	require.True(t, ok)
	assert.Equal(t, "1", res.TerminalID)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ShowHidesOldBeforeShowingNew(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1)
	r.Register(&Resource{Key: keyA, Surface: newSurface(log, keyA)})
	r.Register(&Resource{Key: keyB, Surface: newSurface(log, keyB)})

	require.True(t, r.Show(keyA))
	require.True(t, r.Show(keyB))

	assert.Equal(t, []string{"show a:build", "hide a:build", "show a:test"}, log.events)
	visible, ok := r.Visible()
	require.True(t, ok)
	assert.Equal(t, keyB, visible)
	assert.Equal(t, 1, visibleCount(r))
}

func TestRegistry_ShowUnknownKey(t *testing.T) {
	r := NewRegistry(1)
	assert.False(t, r.Show(keyA))
	_, ok := r.Visible()
	assert.False(t, ok)
}

func TestRegistry_EnsureVisible(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1)
	r.Register(&Resource{Key: keyA, Surface: newSurface(log, keyA)})

	var resolved []domain.SessionKey
	resolve := func(k domain.SessionKey) { resolved = append(resolved, k) }

	assert.True(t, r.EnsureVisible(keyA, resolve))
	assert.Empty(t, resolved)

	assert.False(t, r.EnsureVisible(keyB, resolve))
	assert.Equal(t, []domain.SessionKey{keyB}, resolved)
}

func TestRegistry_RemoveVisibleClearsVisibility(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1)
	surface := newSurface(log, keyA)
	r.Register(&Resource{Key: keyA, Surface: surface})
	r.Show(keyA)

	require.NoError(t, r.Remove(keyA))

	assert.True(t, surface.closed)
	assert.False(t, r.Has(keyA))
	_, ok := r.Visible()
	assert.False(t, ok)
	assert.NoError(t, r.Remove(keyA), "removing twice is a no-op")
}

func TestRegistry_SetScaleReachesHiddenSurfaces(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1)
	a := newSurface(log, keyA)
	b := newSurface(log, keyB)
	r.Register(&Resource{Key: keyA, Surface: a})
	r.Register(&Resource{Key: keyB, Surface: b})
	r.Show(keyA)

	r.SetScale(1.7)

	assert.Equal(t, 1.7, a.scale)
	assert.Equal(t, 1.7, b.scale)
	assert.Equal(t, 1.7, r.Scale())
}

func TestRegistry_Rekey(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1)
	r.Register(&Resource{Key: keyA, Surface: newSurface(log, keyA)})
	r.Register(&Resource{Key: keyC, Surface: newSurface(log, keyC)})
	r.Show(keyA)

	renamed := domain.NewSessionKey("a", "release")
	require.True(t, r.Rekey(keyA, renamed))

	assert.False(t, r.Has(keyA))
	res, ok := r.Get(renamed)
	require.True(t, ok)
	assert.Equal(t, renamed, res.Key)
	visible, _ := r.Visible()
	assert.Equal(t, renamed, visible)

	assert.False(t, r.Rekey(renamed, keyC), "target taken")
	assert.False(t, r.Rekey(keyB, renamed), "source missing")
}

func TestRegistry_KeysSorted(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1)
	for _, k := range []domain.SessionKey{keyC, keyB, keyA} {
		r.Register(&Resource{Key: k, Surface: newSurface(log, k)})
	}

	assert.Equal(t, []domain.SessionKey{keyA, keyB, keyC}, r.Keys())
}

func TestRegistry_Close(t *testing.T) {
	log := &eventLog{}
	r := NewRegistry(1)
	a := newSurface(log, keyA)
	r.Register(&Resource{Key: keyA, Surface: a})

	require.NoError(t, r.Close())
	assert.True(t, a.closed)
	assert.Zero(t, r.Len())
}
