package ports

import (
	"context"

	"github.com/renato0307/muxdeck/internal/domain"
)

// AttachChannel is the persistent asynchronous channel attach requests travel on.
// SendAttach returns once the request is written; the resolution arrives later on Events.
type AttachChannel interface {
	Close() error
	Events() <-chan domain.AttachEvent
	SendAttach(ctx context.Context, req domain.AttachRequest) error
}
