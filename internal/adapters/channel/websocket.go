package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

const (
	// DefaultPath is where the backend serves the attach channel
	DefaultPath = "/ws"

	eventAttachSession = "attach_session"
	eventError         = "error"
	eventTerminalClose = "terminal_closed"
	eventTerminalReady = "terminal_ready"

	eventBuffer  = 64
	writeTimeout = 10 * time.Second
)

// envelope is the JSON frame carried on the socket
type envelope struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Event string          `json:"event"`
}

type terminalReadyPayload struct {
	Host          string            `json:"host"`
	Port          domain.FlexString `json:"port"`
	RequestID     string            `json:"request_id"`
	Reused        bool              `json:"reused"`
	TerminalID    domain.FlexString `json:"terminal_id"`
	UseNginxProxy bool              `json:"use_nginx_proxy"`
}

type terminalClosedPayload struct {
	TerminalID domain.FlexString `json:"terminal_id"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// WebSocket is an AttachChannel over a websocket connection.
// One goroutine reads frames; writes are serialised by writeMu.
type WebSocket struct {
	closeOnce sync.Once
	closing   chan struct{}
	conn      *websocket.Conn
	done      chan struct{}
	events    chan domain.AttachEvent
	writeMu   sync.Mutex
}

// Verify interface compliance at compile time
var _ ports.AttachChannel = (*WebSocket)(nil)

// ChannelURL derives the websocket URL from the backend origin
func ChannelURL(origin *url.URL, path string) string {
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	scheme := "ws"
	if origin.Scheme == "https" {
		scheme = "wss"
	}
	u := url.URL{Scheme: scheme, Host: origin.Host, Path: path}
	return u.String()
}

// Dial connects to the attach channel and starts the read loop
func Dial(ctx context.Context, rawURL, cookie string) (*WebSocket, error) {
	header := http.Header{}
	if cookie != "" {
		header.Set("Cookie", cookie)
	}

	logging.Logger.Info("Connecting attach channel", "url", rawURL)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, rawURL, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to connect attach channel %s (http %d): %w", rawURL, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect attach channel %s: %w", rawURL, err)
	}

	return newWebSocket(conn), nil
}

func newWebSocket(conn *websocket.Conn) *WebSocket {
	ws := &WebSocket{
		closing: make(chan struct{}),
		conn:    conn,
		done:    make(chan struct{}),
		events:  make(chan domain.AttachEvent, eventBuffer),
	}
	go ws.readLoop()
	return ws
}

// Events returns inbound events. The channel is closed when the connection ends.
func (w *WebSocket) Events() <-chan domain.AttachEvent {
	return w.events
}

// SendAttach writes one attach_session frame
func (w *WebSocket) SendAttach(ctx context.Context, req domain.AttachRequest) error {
	select {
	case <-w.done:
		return domain.ErrChannelClosed
	case <-w.closing:
		return domain.ErrChannelClosed
	default:
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode attach request: %w", err)
	}
	frame, err := json.Marshal(envelope{Event: eventAttachSession, Data: data})
	if err != nil {
		return fmt.Errorf("encode attach request: %w", err)
	}

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if err := w.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to send attach request: %w", err)
	}
	if err := w.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return fmt.Errorf("failed to send attach request: %w", err)
	}

	logging.Logger.Debug("Attach request sent",
		"host_id", req.HostID,
		"session", req.SessionName,
		"request_id", req.RequestID)
	return nil
}

// Close shuts the connection down. The read loop then closes Events.
func (w *WebSocket) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closing)
		w.writeMu.Lock()
		_ = w.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		w.writeMu.Unlock()
		err = w.conn.Close()
	})
	return err
}

// readLoop runs in the background decoding frames into events
func (w *WebSocket) readLoop() {
	defer close(w.events)
	defer close(w.done)

	for {
		_, raw, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Logger.Warn("Attach channel closed unexpectedly", "error", err)
			} else {
				logging.Logger.Debug("Attach channel read loop ended", "error", err)
			}
			return
		}

		ev, err := decodeEvent(raw)
		if err != nil {
			logging.Logger.Warn("Dropping malformed attach channel frame", "error", err)
			continue
		}
		if ev == nil {
			continue
		}
		select {
		case w.events <- ev:
		case <-w.closing:
			return
		}
	}
}

// decodeEvent turns one frame into an AttachEvent.
// Unknown event names yield (nil, nil).
func decodeEvent(raw []byte) (domain.AttachEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Event {
	case eventTerminalReady:
		var p terminalReadyPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Event, err)
		}
		return toTerminalReady(p), nil

	case eventTerminalClose:
		var p terminalClosedPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Event, err)
		}
		return domain.TerminalClosed{TerminalID: p.TerminalID.String()}, nil

	case eventError:
		var p errorPayload
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &p); err != nil {
				return nil, fmt.Errorf("decode %s: %w", env.Event, err)
			}
		}
		return domain.AttachFailed{Message: p.Message}, nil

	default:
		logging.Logger.Debug("Ignoring attach channel event", "event", env.Event)
		return nil, nil
	}
}

func toTerminalReady(p terminalReadyPayload) domain.TerminalReady {
	ev := domain.TerminalReady{
		RequestID:  p.RequestID,
		Reused:     p.Reused,
		TerminalID: p.TerminalID.String(),
	}
	if p.UseNginxProxy {
		ev.Connection = domain.ProxyConnection{TerminalID: ev.TerminalID}
	} else {
		ev.Connection = domain.DirectConnection{Host: p.Host, Port: int(p.Port.Int())}
	}
	return ev
}
