package services

import "github.com/renato0307/muxdeck/internal/domain"

// Snapshot is the result of one refresh
type Snapshot struct {
	// HostErr is set when the host list failed; Hosts is then empty and
	// Sessions is still valid
	HostErr  error
	Hosts    []domain.Host
	Sessions []domain.Session
}

// ImportResult reports what a host import did
type ImportResult struct {
	Added   []domain.Host
	Failed  map[string]error
	Skipped []string
}
