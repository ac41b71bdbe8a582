package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

// SessionService handles tmux session operations against the backend
type SessionService struct {
	sessionReader ports.SessionReader
	sessionWriter ports.SessionWriter
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionReader ports.SessionReader, sessionWriter ports.SessionWriter) *SessionService {
	return &SessionService{
		sessionReader: sessionReader,
		sessionWriter: sessionWriter,
	}
}

// ListSessions returns sessions of every enabled host, optionally limited to one host
func (s *SessionService) ListSessions(ctx context.Context, hostID string) ([]domain.Session, error) {
	sessions, err := s.sessionReader.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	if hostID == "" {
		return sessions, nil
	}

	filtered := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.HostID == hostID {
			filtered = append(filtered, session)
		}
	}
	return filtered, nil
}

// CreateSession creates a session on hostID. The name is sanitized first
// and the returned key carries the name the backend actually used.
func (s *SessionService) CreateSession(ctx context.Context, hostID, displayName string) (domain.SessionKey, error) {
	name := domain.SanitizeSessionName(strings.TrimSpace(displayName))
	if name == "" {
		return domain.SessionKey{}, fmt.Errorf("session name is required")
	}
	key := domain.NewSessionKey(hostID, name)

	if _, found, err := s.find(ctx, key); err != nil {
		return domain.SessionKey{}, err
	} else if found {
		return domain.SessionKey{}, fmt.Errorf("%w: %s", domain.ErrSessionExists, key)
	}

	logging.Logger.Info("Creating session", "host_id", key.HostID, "session", key.Name)
	created, err := s.sessionWriter.CreateSession(ctx, key.HostID, key.Name)
	if err != nil {
		logging.Logger.Error("Failed to create session", "session", key.String(), "error", err)
		return domain.SessionKey{}, err
	}

	logging.Logger.Info("Session created", "session", created.String())
	return created, nil
}

// RenameSession renames key to the sanitized newDisplayName and returns the
// new key. Renaming to the current name is a no-op.
func (s *SessionService) RenameSession(ctx context.Context, key domain.SessionKey, newDisplayName string) (domain.SessionKey, error) {
	newName := domain.SanitizeSessionName(strings.TrimSpace(newDisplayName))
	if newName == "" {
		return domain.SessionKey{}, fmt.Errorf("session name is required")
	}
	if newName == key.Name {
		return key, nil
	}
	newKey := domain.NewSessionKey(key.HostID, newName)

	sessions, err := s.sessionReader.ListSessions(ctx)
	if err != nil {
		return domain.SessionKey{}, err
	}
	if !contains(sessions, key) {
		return domain.SessionKey{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, key)
	}
	if contains(sessions, newKey) {
		return domain.SessionKey{}, fmt.Errorf("%w: %s", domain.ErrSessionExists, newKey)
	}

	logging.Logger.Info("Renaming session", "session", key.String(), "new_name", newName)
	if err := s.sessionWriter.RenameSession(ctx, key, newName); err != nil {
		logging.Logger.Error("Failed to rename session", "session", key.String(), "error", err)
		return domain.SessionKey{}, err
	}
	return newKey, nil
}

// DeleteSession kills the tmux session behind key
func (s *SessionService) DeleteSession(ctx context.Context, key domain.SessionKey) error {
	if _, found, err := s.find(ctx, key); err != nil {
		return err
	} else if !found {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, key)
	}

	logging.Logger.Info("Deleting session", "session", key.String())
	if err := s.sessionWriter.DeleteSession(ctx, key); err != nil {
		logging.Logger.Error("Failed to delete session", "session", key.String(), "error", err)
		return err
	}
	return nil
}

func (s *SessionService) find(ctx context.Context, key domain.SessionKey) (domain.Session, bool, error) {
	sessions, err := s.sessionReader.ListSessions(ctx)
	if err != nil {
		return domain.Session{}, false, err
	}
	for _, session := range sessions {
		if session.Key() == key {
			return session, true, nil
		}
	}
	return domain.Session{}, false, nil
}

func contains(sessions []domain.Session, key domain.SessionKey) bool {
	for _, session := range sessions {
		if session.Key() == key {
			return true
		}
	}
	return false
}
