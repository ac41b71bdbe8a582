package domain

import "errors"

var (
	ErrAttachPending     = errors.New("attach already pending")
	ErrBackend           = errors.New("backend error")
	ErrChannelClosed     = errors.New("attach channel closed")
	ErrHostNotFound      = errors.New("host not found")
	ErrInvalidAddress    = errors.New("invalid terminal address")
	ErrNoSelection       = errors.New("no session selected")
	ErrSessionExists     = errors.New("session already exists")
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownConnection = errors.New("unknown connection descriptor")
)
