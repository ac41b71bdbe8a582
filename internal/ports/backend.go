package ports

import (
	"context"
	"net/url"

	"github.com/renato0307/muxdeck/internal/domain"
)

// SessionReader lists tmux sessions across all enabled hosts
type SessionReader interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
}

// SessionWriter creates, renames and deletes tmux sessions on a host
type SessionWriter interface {
	CreateSession(ctx context.Context, hostID, name string) (domain.SessionKey, error)
	DeleteSession(ctx context.Context, key domain.SessionKey) error
	RenameSession(ctx context.Context, key domain.SessionKey, newName string) error
}

// HostReader lists configured remote hosts
type HostReader interface {
	ListHosts(ctx context.Context) ([]domain.Host, error)
}

// HostWriter manages configured remote hosts
type HostWriter interface {
	AddHost(ctx context.Context, in domain.HostInput) (domain.Host, error)
	DeleteHost(ctx context.Context, id string) error
	UpdateHost(ctx context.Context, id string, in domain.HostInput) error
}

// Backend is the composite interface of the session manager HTTP API
type Backend interface {
	SessionReader
	SessionWriter
	HostReader
	HostWriter

	// Origin is the backend base URL terminal addresses resolve against
	Origin() *url.URL
}
