package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewWithClient(srv.URL, srv.Client(), opts...)
	require.NoError(t, err)
	return c
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := New("ftp://example.com")
	assert.Error(t, err)

	c, err := New("http://example.com:5000/")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:5000", c.Origin().String())
}

func TestListSessions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sessions", r.URL.Path)
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		_, _ = io.WriteString(w, `{"sessions":[{"id":"$1","name":"build","created":1712345678,"windows":2,"attached":false,"host_id":"local","host_name":"Local","host_color":"#4a9eff"}]}`)
	}, WithCookie("session=abc"))

	sessions, err := c.ListSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.NewSessionKey("local", "build"), sessions[0].Key())
	assert.Equal(t, "1712345678", sessions[0].Created.String())
}

func TestListSessions_EmptyList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"sessions":null}`)
	})

	sessions, err := c.ListSessions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestListSessions_ErrorBodyWithOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"tmux not running"}`)
	})

	_, err := c.ListSessions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Contains(t, err.Error(), "tmux not running")
}

func TestListSessions_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Not authenticated"}`)
	})

	_, err := c.ListSessions(context.Background())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Equal(t, "Not authenticated", reqErr.Error())
}

func TestCreateSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body := decodeBody(t, r)
		assert.Equal(t, "work", body["session_name"])
		assert.Equal(t, "srv1", body["host_id"])
		_, _ = io.WriteString(w, `{"success":true,"session_name":"work","host_id":"srv1"}`)
	})

	key, err := c.CreateSession(context.Background(), "srv1", "work")

	require.NoError(t, err)
	assert.Equal(t, domain.NewSessionKey("srv1", "work"), key)
}

func TestRenameSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/rename", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, map[string]any{"old_name": "a", "new_name": "b", "host_id": "local"}, body)
		_, _ = io.WriteString(w, `{"success":true,"refresh_sessions":true}`)
	})

	require.NoError(t, c.RenameSession(context.Background(), domain.NewSessionKey("local", "a"), "b"))
}

func TestDeleteSession_BackendError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/delete", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Failed to delete session: no such session"}`)
	})

	err := c.DeleteSession(context.Background(), domain.NewSessionKey("local", "ghost"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to delete session: no such session")
}

func TestListHosts_FillsColors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"hosts":[{"id":"ab12cd34","name":"box","hostname":"box.lan","port":22,"username":"me","enabled":true}]}`)
	})

	hosts, err := c.ListHosts(context.Background())

	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "box.lan", hosts[0].Hostname)
	assert.Equal(t, domain.HostColor("ab12cd34"), hosts[0].Color)
}

func TestAddHost_NormalizesInput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/hosts", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, float64(22), body["port"])
		assert.Equal(t, "box.lan", body["name"])
		_, _ = io.WriteString(w, `{"success":true,"host":{"id":"ab12cd34","name":"box.lan","hostname":"box.lan","port":22,"enabled":true}}`)
	})

	host, err := c.AddHost(context.Background(), domain.HostInput{Hostname: "box.lan", Enabled: true})

	require.NoError(t, err)
	assert.Equal(t, "ab12cd34", host.ID)
	assert.NotEmpty(t, host.Color)
}

func TestUpdateHost_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/hosts/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Host not found"}`)
	})

	err := c.UpdateHost(context.Background(), "missing", domain.HostInput{Hostname: "x"})

	assert.ErrorIs(t, err, domain.ErrHostNotFound)
}

func TestDeleteHost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/hosts/ab12cd34", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	require.NoError(t, c.DeleteHost(context.Background(), "ab12cd34"))
}

func TestUnaryTimeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithUnaryTimeout(50*time.Millisecond))
	defer close(release)

	_, err := c.ListSessions(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
