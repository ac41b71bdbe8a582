package surface

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
)

var testKey = domain.NewSessionKey("local", "build")

func mustAddress(t *testing.T, raw string) domain.TerminalAddress {
	t.Helper()
	addr, err := domain.NewTerminalAddress(raw)
	require.NoError(t, err)
	return addr
}

type failures struct {
	mu   sync.Mutex
	keys []domain.SessionKey
	errs []error
}

func (f *failures) record(key domain.SessionKey, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	f.errs = append(f.errs, err)
}

func TestNewSurface_ProbeSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	var got failures
	f := NewFactory(got.record, WithCookie("session=abc"), WithHTTPClient(srv.Client()))

	s, err := f.NewSurface(testKey, mustAddress(t, srv.URL+"/terminal/1"))
	require.NoError(t, err)
	f.Wait()

	pane := s.(*Pane)
	status, statusErr := pane.Status()
	assert.Equal(t, StatusReady, status)
	assert.NoError(t, statusErr)
	assert.Empty(t, got.keys)
	assert.False(t, s.Visible())
	assert.Equal(t, testKey, pane.Key())
}

func TestNewSurface_ProbeFailureCallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var got failures
	f := NewFactory(got.record)

	s, err := f.NewSurface(testKey, mustAddress(t, srv.URL))
	require.NoError(t, err)
	f.Wait()

	status, statusErr := s.(*Pane).Status()
	assert.Equal(t, StatusFailed, status)
	assert.ErrorContains(t, statusErr, "http 502")
	assert.Contains(t, s.(*Pane).StatusText(), "failed: failed to load")
	require.Len(t, got.keys, 1)
	assert.Equal(t, testKey, got.keys[0])
}

func TestNewSurface_WithoutProbeIsReady(t *testing.T) {
	f := NewFactory(nil, WithProbe(false))

	s, err := f.NewSurface(testKey, mustAddress(t, "http://127.0.0.1:1"))
	require.NoError(t, err)

	status, _ := s.(*Pane).Status()
	assert.Equal(t, StatusReady, status)
	assert.Equal(t, "ready", s.(*Pane).StatusText())
}

func TestNewSurface_RejectsEmptyAddress(t *testing.T) {
	f := NewFactory(nil)

	_, err := f.NewSurface(testKey, domain.TerminalAddress{})

	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestPane_VisibilityAndScale(t *testing.T) {
	f := NewFactory(nil, WithProbe(false))
	s, err := f.NewSurface(testKey, mustAddress(t, "http://127.0.0.1:1"))
	require.NoError(t, err)

	s.SetScale(1.4)
	s.Show()
	assert.True(t, s.Visible())
	assert.Equal(t, 1.4, s.Scale())

	s.Hide()
	assert.False(t, s.Visible())

	require.NoError(t, s.Close())
	s.Show()
	assert.False(t, s.Visible(), "closed panes never show")
	status, _ := s.(*Pane).Status()
	assert.Equal(t, StatusClosed, status)
}

func TestPane_CloseDuringProbeDoesNotReportFailure(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	var got failures
	f := NewFactory(got.record)
	s, err := f.NewSurface(testKey, mustAddress(t, srv.URL))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	f.Wait()

	assert.Empty(t, got.keys)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
