package multiplexer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
)

func TestMultiplexer_SwitchHostsAndBackWithoutNewRequest(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build", "a", "test", "b", "api")))
	assert.Equal(t, "a", h.mux.Selection().Scope())

	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(ctx, keyA))
	h.ready(t, "t1", false)

	h.expectAttach(keyB)
	require.NoError(t, h.mux.SelectSession(ctx, keyB))
	h.ready(t, "t2", false)

	require.NoError(t, h.mux.SelectHost(ctx, "b"))
	_, visible := h.mux.Registry().Visible()
	assert.False(t, visible, "no remembered session on b")

	// no further SendAttach is expected
	require.NoError(t, h.mux.SelectHost(ctx, "a"))

	visibleKey, ok := h.mux.Registry().Visible()
	require.True(t, ok)
	assert.Equal(t, keyB, visibleKey)
	tab, ok := h.mux.View().ActiveTab()
	require.True(t, ok)
	assert.Equal(t, keyB, tab.Key)
	assert.True(t, tab.Warm)
	assert.Len(t, h.factory.created, 2)
}

func TestMultiplexer_RequestHidesPreviousSurface(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.mux.Registry().Register(&Resource{Key: keyA, Surface: newSurface(h.log, keyA)})
	require.NoError(t, h.mux.SelectSession(ctx, keyA))

	h.expectAttach(keyB)
	require.NoError(t, h.mux.SelectSession(ctx, keyB))

	_, visible := h.mux.Registry().Visible()
	assert.False(t, visible)
	tab := h.mux.View()
	assert.Equal(t, keyB, tab.Active)
}

func TestMultiplexer_DeleteVisibleSession(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(ctx, keyA))
	h.ready(t, "t1", false)

	require.NoError(t, h.mux.SessionDeleted(keyA))

	_, visible := h.mux.Registry().Visible()
	assert.False(t, visible)
	assert.False(t, h.mux.Registry().Has(keyA))
	_, remembered := h.mux.Selection().Remembered("a")
	assert.False(t, remembered)
	assert.True(t, h.factory.created[0].closed)

	// switching back to the host must not resurrect anything
	require.NoError(t, h.mux.SelectHost(ctx, "a"))
	_, visible = h.mux.Registry().Visible()
	assert.False(t, visible)
}

func TestMultiplexer_RenameMigratesResource(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build")))
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(ctx, keyA))
	h.ready(t, "t1", false)

	h.mux.SessionRenamed(keyA, "release")

	renamed := domain.NewSessionKey("a", "release")
	assert.True(t, h.mux.Registry().Has(renamed))
	assert.False(t, h.mux.Registry().Has(keyA))
	visible, _ := h.mux.Registry().Visible()
	assert.Equal(t, renamed, visible)
	assert.Equal(t, "release", h.mux.Sessions()[0].Name)

	// selecting the renamed session is served warm
	require.NoError(t, h.mux.SelectSession(ctx, renamed))
	assert.Len(t, h.factory.created, 1)
}

func TestMultiplexer_RenameOntoRegisteredKeyKeepsActiveVisible(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	renamed := domain.NewSessionKey("a", "release")
	h.mux.registry.Register(&Resource{Key: renamed, Surface: newSurface(h.log, renamed)})
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(ctx, keyA))
	h.ready(t, "t1", false)

	h.mux.SessionRenamed(keyA, "release")

	assert.False(t, h.mux.Registry().Has(keyA))
	active, ok := h.mux.Selection().Active()
	require.True(t, ok)
	assert.Equal(t, renamed, active)
	visible, ok := h.mux.Registry().Visible()
	require.True(t, ok)
	assert.Equal(t, renamed, visible)
	assert.Equal(t, 1, visibleCount(h.mux.registry))
}

func TestMultiplexer_ZoomAppliesToAllSurfaces(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.channel.EXPECT().SendAttach(mock.Anything, mock.Anything).Return(nil).Twice()
	require.NoError(t, h.mux.SelectSession(ctx, keyA))
	h.ready(t, "t1", false)
	require.NoError(t, h.mux.SelectSession(ctx, keyB))
	h.ready(t, "t2", false)

	for i := 0; i < 15; i++ {
		h.mux.ZoomIn()
	}

	assert.Equal(t, MaxZoom, h.mux.Zoom())
	for _, s := range h.factory.created {
		assert.Equal(t, MaxZoom, s.scale)
	}
	assert.Equal(t, 200, h.mux.View().ZoomPercent)

	h.mux.ZoomReset()
	assert.Equal(t, DefaultZoom, h.factory.created[0].scale)

	assert.Equal(t, MinZoom, h.mux.SetZoom(0.1))
}

func TestMultiplexer_NewSurfaceGetsCurrentZoom(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.mux.ZoomOut()
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(ctx, keyA))

	h.ready(t, "t1", false)

	assert.Equal(t, 0.9, h.factory.created[0].scale)
}

func TestMultiplexer_ApplySessionsFallsBackToFirstHost(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build", "b", "test")))
	require.NoError(t, h.mux.SelectHost(ctx, "b"))

	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build")))

	assert.Equal(t, "a", h.mux.Selection().Scope())
	v := h.mux.View()
	require.Len(t, v.HostTabs, 1)
	assert.True(t, v.HostTabs[0].Active)
}

func TestMultiplexer_ListErrorKeepsPreviousList(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build")))

	h.mux.SetListError(assert.AnError)

	v := h.mux.View()
	assert.NotEmpty(t, v.ListError)
	assert.Len(t, v.HostTabs, 1)
	assert.Len(t, h.mux.Sessions(), 1)

	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build")))
	assert.Empty(t, h.mux.View().ListError)
}

func TestMultiplexer_RestoreAttachesAfterFirstList(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.mux.Restore(domain.Preferences{
		LastActive:  map[string]string{"b": "test"},
		ScopeHostID: "b",
		Zoom:        1.2,
	})

	h.expectAttach(keyC)
	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build", "b", "test")))
	res := h.ready(t, "t9", true)

	assert.True(t, res.Created)
	assert.True(t, res.Shown)
	assert.Equal(t, 1.2, h.factory.created[0].scale)

	// later refreshes do not attach again
	require.NoError(t, h.mux.ApplySessions(ctx, sessions("a", "build", "b", "test")))

	prefs := h.mux.Preferences()
	assert.Equal(t, "b", prefs.ScopeHostID)
	assert.Equal(t, 1.2, prefs.Zoom)
	assert.Equal(t, map[string]string{"b": "test"}, prefs.LastActive)
}

func TestMultiplexer_AtMostOneVisibleUnderRandomSelection(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.channel.EXPECT().SendAttach(mock.Anything, mock.Anything).Return(nil).Maybe()

	keys := []domain.SessionKey{keyA, keyB, keyC, domain.NewSessionKey("b", "api")}
	hosts := []string{"a", "b"}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			require.NoError(t, h.mux.SelectHost(ctx, hosts[rng.Intn(len(hosts))]))
		case 1:
			require.NoError(t, h.mux.SelectSession(ctx, keys[rng.Intn(len(keys))]))
		case 2:
			if _, ok := h.mux.Selection().Active(); ok {
				h.ready(t, "t", rng.Intn(2) == 0)
			}
		}
		require.LessOrEqual(t, visibleCount(h.mux.Registry()), 1)

		if key, ok := h.mux.Registry().Visible(); ok {
			active, _ := h.mux.Selection().Active()
			require.Equal(t, active, key, "visible surface must match the active session")
		}
	}
	assert.LessOrEqual(t, h.mux.Registry().Len(), len(keys))
}

func TestMultiplexer_Close(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(ctx, keyA))
	h.ready(t, "t1", false)

	require.NoError(t, h.mux.Close())
	assert.True(t, h.factory.created[0].closed)
}
