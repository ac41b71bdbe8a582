package multiplexer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
)

func TestRequestAttach_RegisteredKeySendsNothing(t *testing.T) {
	h := newHarness(t)
	h.mux.registry.Register(&Resource{Key: keyA, Surface: newSurface(h.log, keyA)})

	// the mock fails the test on any SendAttach call
	require.NoError(t, h.mux.attach.RequestAttach(context.Background(), keyA))
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))

	assert.Empty(t, h.factory.created)
}

func TestRequestAttach_DuplicateIsSuppressed(t *testing.T) {
	h := newHarness(t)
	h.expectAttach(keyA)

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
	require.NoError(t, h.mux.attach.RequestAttach(context.Background(), keyA))

	assert.True(t, h.mux.attach.IsPending(keyA))
	assert.Len(t, h.mux.attach.Pending(), 1)
}

func TestRequestAttach_SendFailureIsNotPending(t *testing.T) {
	h := newHarness(t)
	h.channel.EXPECT().SendAttach(mock.Anything, mock.Anything).Return(domain.ErrChannelClosed).Once()
	h.expectAttach(keyA)

	err := h.mux.SelectSession(context.Background(), keyA)
	require.ErrorIs(t, err, domain.ErrChannelClosed)
	assert.False(t, h.mux.attach.IsPending(keyA))

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
	assert.True(t, h.mux.attach.IsPending(keyA))
}

func TestRequestAttach_ExpiredPendingIsRetried(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.mux.attach.now = func() time.Time { return now }
	h.mux.attach.pendingTTL = DefaultPendingTTL
	h.channel.EXPECT().SendAttach(mock.Anything, mock.Anything).Return(nil).Twice()

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
	now = now.Add(DefaultPendingTTL + time.Second)
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
}

func TestRequestAttach_ZeroTTLWaitsForResolution(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.mux.attach.now = func() time.Time { return now }
	h.expectAttach(keyA)

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
	now = now.Add(time.Hour)
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))

	assert.True(t, h.mux.attach.IsPending(keyA))
}

func TestRequestAttach_CarriesRequestID(t *testing.T) {
	h := newHarness(t)
	h.channel.EXPECT().SendAttach(mock.Anything, domain.AttachRequest{
		HostID:      "a",
		RequestID:   "req-1",
		SessionName: "build",
	}).Return(nil).Once()

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
}

func TestTerminalReady_ReusedWithoutResourceCreatesOne(t *testing.T) {
	h := newHarness(t)
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))

	res := h.ready(t, "t1", true)

	assert.True(t, res.Created)
	assert.True(t, res.Shown)
	assert.Len(t, h.factory.created, 1)
	assert.Equal(t, "http://backend:5000/terminal/t1", h.factory.created[0].addr.String())
	assert.False(t, h.mux.attach.IsPending(keyA))
}

func TestTerminalReady_ReusedWithResourceCreatesNone(t *testing.T) {
	h := newHarness(t)
	existing := newSurface(h.log, keyA)
	h.mux.registry.Register(&Resource{Key: keyA, Surface: existing, TerminalID: "t1"})
	h.mux.selection.SelectSession(keyA)

	res := h.ready(t, "t1", true)

	assert.False(t, res.Created)
	assert.True(t, res.Shown)
	assert.Empty(t, h.factory.created)
	assert.True(t, existing.visible)
}

func TestTerminalReady_FreshTerminalOnRegisteredKeyDiscardsDuplicate(t *testing.T) {
	h := newHarness(t)
	existing := newSurface(h.log, keyA)
	h.mux.registry.Register(&Resource{Key: keyA, Surface: existing, TerminalID: "t1"})
	h.mux.selection.SelectSession(keyA)

	res := h.ready(t, "t2", false)

	assert.False(t, res.Created)
	require.Len(t, h.factory.created, 1)
	assert.True(t, h.factory.created[0].closed)
	got, _ := h.mux.registry.Get(keyA)
	assert.Equal(t, "t1", got.TerminalID)
}

func TestTerminalReady_EchoedRequestIDWinsOverSelection(t *testing.T) {
	h := newHarness(t)
	h.expectAttach(keyA)
	h.expectAttach(keyB)

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
	require.NoError(t, h.mux.SelectSession(context.Background(), keyB))

	res, err := h.mux.HandleEvent(context.Background(), domain.TerminalReady{
		Connection: domain.DirectConnection{Host: "10.0.0.2", Port: 7681},
		RequestID:  "req-1",
		TerminalID: "t1",
	})
	require.NoError(t, err)

	assert.Equal(t, keyA, res.Key)
	assert.True(t, res.Created)
	assert.False(t, res.Shown, "keyA is no longer selected")
	assert.True(t, h.mux.registry.Has(keyA))
	assert.False(t, h.mux.attach.IsPending(keyA))
	assert.True(t, h.mux.attach.IsPending(keyB))
	_, visible := h.mux.registry.Visible()
	assert.False(t, visible)
}

func TestTerminalReady_UnknownRequestIDIsDropped(t *testing.T) {
	h := newHarness(t)
	h.expectAttach(keyA)
	h.expectAttach(keyB)

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))
	require.NoError(t, h.mux.SelectSession(context.Background(), keyB))
	_, err := h.mux.HandleEvent(context.Background(), domain.AttachFailed{Message: "Failed to start terminal"})
	require.Error(t, err)

	// late reply for keyA after the error cleared its pending attach
	res, err := h.mux.HandleEvent(context.Background(), domain.TerminalReady{
		Connection: domain.ProxyConnection{TerminalID: "term-for-a"},
		RequestID:  "req-1",
		TerminalID: "term-for-a",
	})
	require.NoError(t, err)

	assert.Equal(t, Resolution{}, res)
	assert.False(t, h.mux.registry.Has(keyB), "keyA's terminal must not be bound to keyB")
	assert.False(t, h.mux.registry.Has(keyA))
	assert.Empty(t, h.factory.created)
}

func TestTerminalReady_WithoutSelectionIsDropped(t *testing.T) {
	h := newHarness(t)

	res := h.ready(t, "t1", false)

	assert.Equal(t, Resolution{}, res)
	assert.Zero(t, h.mux.registry.Len())
}

func TestTerminalReady_BadConnection(t *testing.T) {
	h := newHarness(t)
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))

	_, err := h.mux.HandleEvent(context.Background(), domain.TerminalReady{
		Connection: domain.DirectConnection{Port: 0},
	})

	require.ErrorIs(t, err, domain.ErrInvalidAddress)
	assert.False(t, h.mux.attach.IsPending(keyA))
	assert.Zero(t, h.mux.registry.Len())
}

func TestTerminalReady_SurfaceFactoryError(t *testing.T) {
	h := newHarness(t)
	h.factory.err = errors.New("no display")
	h.expectAttach(keyA)
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))

	_, err := h.mux.HandleEvent(context.Background(), domain.TerminalReady{
		Connection: domain.ProxyConnection{TerminalID: "t1"},
		TerminalID: "t1",
	})

	require.Error(t, err)
	assert.Zero(t, h.mux.registry.Len())
}

func TestAttachFailed_ClearsPendingAndKeepsMessage(t *testing.T) {
	h := newHarness(t)
	h.channel.EXPECT().SendAttach(mock.Anything, mock.Anything).Return(nil).Twice()
	require.NoError(t, h.mux.SelectSession(context.Background(), keyA))

	_, err := h.mux.HandleEvent(context.Background(), domain.AttachFailed{Message: "Failed to start terminal"})

	require.Error(t, err)
	assert.Equal(t, "Failed to start terminal", err.Error())
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.False(t, h.mux.attach.IsPending(keyA))

	require.NoError(t, h.mux.SelectSession(context.Background(), keyA), "retry sends again")
}

func TestTerminalClosed_IsInformational(t *testing.T) {
	h := newHarness(t)
	h.mux.registry.Register(&Resource{Key: keyA, Surface: newSurface(h.log, keyA), TerminalID: "t1"})

	res, err := h.mux.HandleEvent(context.Background(), domain.TerminalClosed{TerminalID: "t1"})

	require.NoError(t, err)
	assert.Equal(t, Resolution{}, res)
	assert.True(t, h.mux.registry.Has(keyA))
}
