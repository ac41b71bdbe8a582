package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

// Refresher fetches the host and session lists together
type Refresher struct {
	hostReader    ports.HostReader
	sessionReader ports.SessionReader
}

// NewRefresher creates a new Refresher
func NewRefresher(sessionReader ports.SessionReader, hostReader ports.HostReader) *Refresher {
	return &Refresher{
		hostReader:    hostReader,
		sessionReader: sessionReader,
	}
}

// Refresh lists sessions and hosts concurrently. A session list failure
// fails the refresh; a host list failure is reported in Snapshot.HostErr.
func (r *Refresher) Refresh(ctx context.Context) (Snapshot, error) {
	start := time.Now()
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sessions, err := r.sessionReader.ListSessions(gctx)
		if err != nil {
			return err
		}
		snap.Sessions = sessions
		return nil
	})
	g.Go(func() error {
		hosts, err := r.hostReader.ListHosts(gctx)
		if err != nil {
			snap.HostErr = err
			return nil
		}
		snap.Hosts = hosts
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Warn("Refresh failed", "error", err)
		return Snapshot{}, err
	}
	if snap.Hosts == nil {
		snap.Hosts = []domain.Host{}
	}

	logging.Logger.Debug("Refreshed",
		"sessions", len(snap.Sessions),
		"hosts", len(snap.Hosts),
		"duration", time.Since(start))
	return snap, nil
}
