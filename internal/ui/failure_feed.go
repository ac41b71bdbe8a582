package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
)

const failureFeedSize = 16

// FailureFeed carries surface load failures from probe goroutines to the
// update loop. Report never blocks; failures beyond the buffer are logged
// and dropped.
type FailureFeed struct {
	ch chan surfaceFailedMsg
}

// NewFailureFeed creates an empty feed
func NewFailureFeed() *FailureFeed {
	return &FailureFeed{ch: make(chan surfaceFailedMsg, failureFeedSize)}
}

// Report queues a failure. It matches surface.FailureFunc.
func (f *FailureFeed) Report(key domain.SessionKey, err error) {
	select {
	case f.ch <- surfaceFailedMsg{err: err, key: key}:
	default:
		logging.Logger.Warn("Surface failure dropped, feed full", "session", key.String(), "error", err)
	}
}

// Wait returns a command that delivers the next failure
func (f *FailureFeed) Wait() tea.Cmd {
	return func() tea.Msg {
		return <-f.ch
	}
}
