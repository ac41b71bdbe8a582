package harness

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// FakeBackend is an in-memory session manager serving the HTTP API and the
// attach channel. It starts with only the local host and no sessions.
type FakeBackend struct {
	mu        sync.Mutex
	hosts     []fakeHost
	nextHost  int
	nextTerm  int
	sessions  map[string][]fakeSession // host id -> sessions
	srv       *httptest.Server
	terminals map[string]string // host:session -> terminal id
	upgrader  websocket.Upgrader
}

type fakeHost struct {
	Enabled  bool   `json:"enabled"`
	Hostname string `json:"hostname"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Port     int    `json:"port"`
	Username string `json:"username,omitempty"`
}

type fakeSession struct {
	Attached bool   `json:"attached"`
	Created  int64  `json:"created"`
	HostID   string `json:"host_id"`
	HostName string `json:"host_name"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Windows  int    `json:"windows"`
}

// NewFakeBackend starts a backend that is closed when the test completes.
func NewFakeBackend(tb testing.TB) *FakeBackend {
	tb.Helper()

	b := &FakeBackend{
		sessions:  map[string][]fakeSession{},
		terminals: map[string]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sessions", b.listSessions)
	mux.HandleFunc("POST /api/session/create", b.createSession)
	mux.HandleFunc("POST /api/session/rename", b.renameSession)
	mux.HandleFunc("POST /api/session/delete", b.deleteSession)
	mux.HandleFunc("GET /api/hosts", b.listHosts)
	mux.HandleFunc("POST /api/hosts", b.addHost)
	mux.HandleFunc("PUT /api/hosts/{id}", b.updateHost)
	mux.HandleFunc("DELETE /api/hosts/{id}", b.deleteHost)
	mux.HandleFunc("GET /terminal/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>terminal</html>"))
	})
	mux.HandleFunc("/ws", b.serveChannel)

	b.srv = httptest.NewServer(mux)
	tb.Cleanup(b.srv.Close)
	return b
}

// URL returns the backend base URL
func (b *FakeBackend) URL() string {
	return b.srv.URL
}

// AddSession seeds a session on hostID
func (b *FakeBackend) AddSession(hostID, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.addSessionLocked(hostID, name)
}

// AddRemoteHost seeds an enabled remote host and returns its id
func (b *FakeBackend) AddRemoteHost(hostname string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addHostLocked(fakeHost{Enabled: true, Hostname: hostname, Name: hostname, Port: 22}).ID
}

// SessionNames returns the session names on hostID
func (b *FakeBackend) SessionNames(hostID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, 0, len(b.sessions[hostID]))
	for _, s := range b.sessions[hostID] {
		names = append(names, s.Name)
	}
	return names
}

// HostCount returns the number of remote hosts
func (b *FakeBackend) HostCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.hosts)
}

func (b *FakeBackend) addSessionLocked(hostID, name string) {
	b.sessions[hostID] = append(b.sessions[hostID], fakeSession{
		Created:  1712345678,
		HostID:   hostID,
		HostName: b.hostNameLocked(hostID),
		ID:       fmt.Sprintf("$%d", len(b.sessions[hostID])+1),
		Name:     name,
		Windows:  1,
	})
}

func (b *FakeBackend) addHostLocked(h fakeHost) fakeHost {
	b.nextHost++
	h.ID = fmt.Sprintf("h%d", b.nextHost)
	b.hosts = append(b.hosts, h)
	return h
}

func (b *FakeBackend) hostNameLocked(hostID string) string {
	if hostID == "local" {
		return "Local"
	}
	for _, h := range b.hosts {
		if h.ID == hostID {
			return h.Name
		}
	}
	return hostID
}

func (b *FakeBackend) hostEnabledLocked(hostID string) bool {
	if hostID == "local" {
		return true
	}
	for _, h := range b.hosts {
		if h.ID == hostID {
			return h.Enabled
		}
	}
	return false
}

func (b *FakeBackend) listSessions(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := []fakeSession{}
	all = append(all, b.sessions["local"]...)
	for _, h := range b.hosts {
		if h.Enabled {
			all = append(all, b.sessions[h.ID]...)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": all})
}

type sessionRequest struct {
	HostID      string `json:"host_id"`
	NewName     string `json:"new_name"`
	OldName     string `json:"old_name"`
	SessionName string `json:"session_name"`
}

func (b *FakeBackend) createSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !readJSON(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hostEnabledLocked(req.HostID) {
		writeError(w, http.StatusBadRequest, "unknown host "+req.HostID)
		return
	}
	if b.indexLocked(req.HostID, req.SessionName) >= 0 {
		writeError(w, http.StatusConflict, "Session already exists")
		return
	}
	b.addSessionLocked(req.HostID, req.SessionName)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "session_name": req.SessionName, "host_id": req.HostID})
}

func (b *FakeBackend) renameSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !readJSON(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexLocked(req.HostID, req.OldName)
	if i < 0 {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	b.sessions[req.HostID][i].Name = req.NewName
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (b *FakeBackend) deleteSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !readJSON(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexLocked(req.HostID, req.SessionName)
	if i < 0 {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	list := b.sessions[req.HostID]
	b.sessions[req.HostID] = append(list[:i:i], list[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (b *FakeBackend) indexLocked(hostID, name string) int {
	for i, s := range b.sessions[hostID] {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func (b *FakeBackend) listHosts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	hosts := append([]fakeHost{}, b.hosts...)
	writeJSON(w, http.StatusOK, map[string]any{"hosts": hosts})
}

func (b *FakeBackend) addHost(w http.ResponseWriter, r *http.Request) {
	var h fakeHost
	if !readJSON(w, r, &h) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	h = b.addHostLocked(h)
	writeJSON(w, http.StatusOK, map[string]any{"host": h})
}

func (b *FakeBackend) updateHost(w http.ResponseWriter, r *http.Request) {
	var h fakeHost
	if !readJSON(w, r, &h) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	id := r.PathValue("id")
	for i := range b.hosts {
		if b.hosts[i].ID == id {
			h.ID = id
			b.hosts[i] = h
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Host not found")
}

func (b *FakeBackend) deleteHost(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := r.PathValue("id")
	for i := range b.hosts {
		if b.hosts[i].ID == id {
			b.hosts = append(b.hosts[:i:i], b.hosts[i+1:]...)
			delete(b.sessions, id)
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Host not found")
}

// serveChannel answers every attach_session frame with terminal_ready,
// reusing the terminal id when the session was attached before.
func (b *FakeBackend) serveChannel(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var frame struct {
			Data  json.RawMessage `json:"data"`
			Event string          `json:"event"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		if frame.Event != "attach_session" {
			continue
		}

		var req struct {
			HostID      string `json:"host_id"`
			RequestID   string `json:"request_id"`
			SessionName string `json:"session_name"`
		}
		if err := json.Unmarshal(frame.Data, &req); err != nil {
			return
		}

		reply := b.attach(req.HostID, req.SessionName, req.RequestID)
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func (b *FakeBackend) attach(hostID, name, requestID string) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.indexLocked(hostID, name) < 0 {
		return map[string]any{"event": "error", "data": map[string]any{"message": "Session not found"}}
	}

	key := hostID + ":" + name
	id, reused := b.terminals[key]
	if !reused {
		b.nextTerm++
		id = fmt.Sprintf("t%d", b.nextTerm)
		b.terminals[key] = id
	}
	return map[string]any{
		"event": "terminal_ready",
		"data": map[string]any{
			"request_id":      requestID,
			"reused":          reused,
			"terminal_id":     id,
			"use_nginx_proxy": true,
		},
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+strings.TrimSpace(err.Error()))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
