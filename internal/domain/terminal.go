package domain

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ConnectionDescriptor says how a terminal reported by the backend is reached.
// It is either a ProxyConnection or a DirectConnection.
type ConnectionDescriptor interface {
	// Resolve turns the descriptor into an address relative to the backend origin
	Resolve(origin *url.URL) (TerminalAddress, error)
	isConnectionDescriptor()
}

// ProxyConnection is a terminal served behind the backend's reverse proxy
type ProxyConnection struct {
	TerminalID string
}

func (ProxyConnection) isConnectionDescriptor() {}

// Resolve returns {origin}/terminal/{id}
func (p ProxyConnection) Resolve(origin *url.URL) (TerminalAddress, error) {
	if p.TerminalID == "" {
		return TerminalAddress{}, fmt.Errorf("%w: proxy connection without terminal id", ErrInvalidAddress)
	}
	if origin == nil {
		return TerminalAddress{}, fmt.Errorf("%w: missing backend origin", ErrInvalidAddress)
	}
	u := &url.URL{
		Scheme: origin.Scheme,
		Host:   origin.Host,
		Path:   "/terminal/" + url.PathEscape(p.TerminalID),
	}
	return TerminalAddress{url: u.String()}, nil
}

// DirectConnection is a terminal listening on its own host and port.
// An empty Host means the backend's own hostname.
type DirectConnection struct {
	Host string
	Port int
}

func (DirectConnection) isConnectionDescriptor() {}

// Resolve returns {scheme}://{host}:{port}, where scheme follows the origin
func (d DirectConnection) Resolve(origin *url.URL) (TerminalAddress, error) {
	if d.Port <= 0 || d.Port > 65535 {
		return TerminalAddress{}, fmt.Errorf("%w: port %d", ErrInvalidAddress, d.Port)
	}
	scheme := "http"
	host := d.Host
	if origin != nil {
		if origin.Scheme == "https" {
			scheme = "https"
		}
		if host == "" {
			host = origin.Hostname()
		}
	}
	if host == "" {
		return TerminalAddress{}, fmt.Errorf("%w: direct connection without host", ErrInvalidAddress)
	}
	u := &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(d.Port)),
	}
	return TerminalAddress{url: u.String()}, nil
}

// TerminalAddress is where a terminal surface loads its content from.
// It is opaque to everything but the surface.
type TerminalAddress struct {
	url string
}

// NewTerminalAddress wraps an absolute URL
func NewTerminalAddress(raw string) (TerminalAddress, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return TerminalAddress{}, fmt.Errorf("%w: %q", ErrInvalidAddress, raw)
	}
	return TerminalAddress{url: u.String()}, nil
}

// String returns the URL
func (a TerminalAddress) String() string {
	return a.url
}

// IsZero reports whether the address is unset
func (a TerminalAddress) IsZero() bool {
	return a.url == ""
}

// AttachRequest is the outbound attach_session payload
type AttachRequest struct {
	HostID      string `json:"host_id"`
	RequestID   string `json:"request_id,omitempty"`
	SessionName string `json:"session_name"`
}

// TerminalReady is the resolution of an attach request.
// RequestID is only set when the backend echoes it.
type TerminalReady struct {
	Connection ConnectionDescriptor
	RequestID  string
	Reused     bool
	TerminalID string
}

// TerminalClosed reports that a terminal process exited
type TerminalClosed struct {
	TerminalID string
}

// AttachFailed is a generic error event from the attach channel
type AttachFailed struct {
	Message string
}

func (e AttachFailed) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrBackend while Error keeps the message verbatim
func (e AttachFailed) Unwrap() error {
	return ErrBackend
}

// AttachEvent is one inbound message from the attach channel:
// TerminalReady, TerminalClosed or AttachFailed.
type AttachEvent interface {
	attachEvent()
}

func (TerminalReady) attachEvent()  {}
func (TerminalClosed) attachEvent() {}
func (AttachFailed) attachEvent()   {}
