package multiplexer

import "github.com/renato0307/muxdeck/internal/domain"

// Selection is the user's host scope, the active session within it, and
// the last session shown on each host. The active session always belongs
// to the scope host.
type Selection struct {
	active     domain.SessionKey
	lastActive map[string]string
	scope      string
}

// NewSelection returns an empty selection with no scope
func NewSelection() *Selection {
	return &Selection{lastActive: make(map[string]string)}
}

// Scope returns the scope host id ("" before the first list arrives)
func (s *Selection) Scope() string {
	return s.scope
}

// Active returns the active session key, if any
func (s *Selection) Active() (domain.SessionKey, bool) {
	return s.active, !s.active.IsZero()
}

// Remembered returns the last session shown on hostID
func (s *Selection) Remembered(hostID string) (domain.SessionKey, bool) {
	name, ok := s.lastActive[hostID]
	if !ok || name == "" {
		return domain.SessionKey{}, false
	}
	return domain.NewSessionKey(hostID, name), true
}

// LastActive returns a copy of the per-host memory
func (s *Selection) LastActive() map[string]string {
	out := make(map[string]string, len(s.lastActive))
	for k, v := range s.lastActive {
		out[k] = v
	}
	return out
}

// SelectHost scopes to hostID. The remembered session for that host becomes
// active and is returned; without one the active session is cleared.
func (s *Selection) SelectHost(hostID string) (domain.SessionKey, bool) {
	s.scope = hostID
	key, ok := s.Remembered(hostID)
	if !ok {
		s.active = domain.SessionKey{}
		return domain.SessionKey{}, false
	}
	s.active = key
	return key, true
}

// SelectSession activates key and remembers it for its host.
// The scope follows the key's host.
func (s *Selection) SelectSession(key domain.SessionKey) {
	s.scope = key.HostID
	s.active = key
	s.lastActive[key.HostID] = key.Name
}

// Renamed rewrites every reference to oldKey so it points at newName
func (s *Selection) Renamed(oldKey domain.SessionKey, newName string) {
	if s.active == oldKey {
		s.active = domain.NewSessionKey(oldKey.HostID, newName)
	}
	if s.lastActive[oldKey.HostID] == oldKey.Name {
		s.lastActive[oldKey.HostID] = newName
	}
}

// Deleted forgets key: the active session is cleared if it matches, and so is
// the host memory
func (s *Selection) Deleted(key domain.SessionKey) {
	if s.active == key {
		s.active = domain.SessionKey{}
	}
	if s.lastActive[key.HostID] == key.Name {
		delete(s.lastActive, key.HostID)
	}
}

// Restore loads persisted state. The active session is the remembered one
// for the restored scope.
func (s *Selection) Restore(scope string, lastActive map[string]string) {
	s.lastActive = make(map[string]string, len(lastActive))
	for k, v := range lastActive {
		if v != "" {
			s.lastActive[k] = v
		}
	}
	s.scope = scope
	s.active = domain.SessionKey{}
	if key, ok := s.Remembered(scope); ok {
		s.active = key
	}
}

// FallbackScope returns the host to switch to after a refresh: the current
// scope when it still has sessions, otherwise the first host in the list.
// It reports false when the scope should stay as is.
func FallbackScope(scope string, sessions []domain.Session) (string, bool) {
	if len(sessions) == 0 {
		return "", false
	}
	for _, sess := range sessions {
		if sess.Key().HostID == scope {
			return "", false
		}
	}
	return sessions[0].Key().HostID, true
}
