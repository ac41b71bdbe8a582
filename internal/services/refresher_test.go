package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
	portsmocks "github.com/renato0307/muxdeck/internal/ports/mocks"
)

func TestRefresh(t *testing.T) {
	backend := portsmocks.NewMockBackend(t)
	backend.EXPECT().ListSessions(mock.Anything).Return(testSessions(), nil)
	backend.EXPECT().ListHosts(mock.Anything).Return([]domain.Host{{ID: "srv1"}}, nil)

	snap, err := NewRefresher(backend, backend).Refresh(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Sessions, 3)
	assert.Len(t, snap.Hosts, 1)
	assert.NoError(t, snap.HostErr)
}

func TestRefresh_HostFailureIsNotFatal(t *testing.T) {
	backend := portsmocks.NewMockBackend(t)
	backend.EXPECT().ListSessions(mock.Anything).Return(testSessions(), nil)
	backend.EXPECT().ListHosts(mock.Anything).Return(nil, assert.AnError)

	snap, err := NewRefresher(backend, backend).Refresh(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Sessions, 3)
	assert.NotNil(t, snap.Hosts)
	assert.ErrorIs(t, snap.HostErr, assert.AnError)
}

func TestRefresh_SessionFailureFails(t *testing.T) {
	backend := portsmocks.NewMockBackend(t)
	backend.EXPECT().ListSessions(mock.Anything).Return(nil, assert.AnError)
	backend.EXPECT().ListHosts(mock.Anything).Return([]domain.Host{}, nil).Maybe()

	_, err := NewRefresher(backend, backend).Refresh(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
