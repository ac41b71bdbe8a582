package multiplexer

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/ports"
	portsmocks "github.com/renato0307/muxdeck/internal/ports/mocks"
)

// eventLog records surface calls in order across surfaces
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

type fakeSurface struct {
	addr    domain.TerminalAddress
	closed  bool
	log     *eventLog
	name    string
	scale   float64
	visible bool
}

func (f *fakeSurface) Address() domain.TerminalAddress { return f.addr }
func (f *fakeSurface) Scale() float64                  { return f.scale }
func (f *fakeSurface) Visible() bool                   { return f.visible }

func (f *fakeSurface) Show() {
	f.visible = true
	f.log.add("show %s", f.name)
}

func (f *fakeSurface) Hide() {
	if f.visible {
		f.log.add("hide %s", f.name)
	}
	f.visible = false
}

func (f *fakeSurface) SetScale(factor float64) {
	f.scale = factor
}

func (f *fakeSurface) Close() error {
	f.closed = true
	f.log.add("close %s", f.name)
	return nil
}

type fakeFactory struct {
	created []*fakeSurface
	err     error
	log     *eventLog
}

func (f *fakeFactory) NewSurface(key domain.SessionKey, addr domain.TerminalAddress) (ports.Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &fakeSurface{addr: addr, log: f.log, name: key.String()}
	f.created = append(f.created, s)
	return s, nil
}

func newSurface(log *eventLog, key domain.SessionKey) *fakeSurface {
	return &fakeSurface{log: log, name: key.String()}
}

func visibleCount(r *Registry) int {
	n := 0
	for _, k := range r.Keys() {
		res, _ := r.Get(k)
		if res.Surface.Visible() {
			n++
		}
	}
	return n
}

type harness struct {
	channel *portsmocks.MockAttachChannel
	factory *fakeFactory
	log     *eventLog
	mux     *Multiplexer
	nextID  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	origin, err := url.Parse("http://backend:5000")
	require.NoError(t, err)

	h := &harness{
		channel: portsmocks.NewMockAttachChannel(t),
		log:     &eventLog{},
	}
	h.factory = &fakeFactory{log: h.log}
	h.mux = New(Config{Channel: h.channel, Origin: origin, Surfaces: h.factory})
	h.mux.attach.newRequestID = func() string {
		h.nextID++
		return fmt.Sprintf("req-%d", h.nextID)
	}
	return h
}

// expectAttach expects exactly one attach_session for key
func (h *harness) expectAttach(key domain.SessionKey) {
	h.channel.EXPECT().SendAttach(mock.Anything, mock.MatchedBy(func(r domain.AttachRequest) bool {
		return r.HostID == key.HostID && r.SessionName == key.Name
	})).Return(nil).Once()
}

// ready delivers a terminal_ready without a request id
func (h *harness) ready(t *testing.T, terminalID string, reused bool) Resolution {
	t.Helper()
	res, err := h.mux.HandleEvent(context.Background(), domain.TerminalReady{
		Connection: domain.ProxyConnection{TerminalID: terminalID},
		Reused:     reused,
		TerminalID: terminalID,
	})
	require.NoError(t, err)
	return res
}

func sessions(pairs ...string) []domain.Session {
	var out []domain.Session
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Session{HostID: pairs[i], Name: pairs[i+1], Windows: 1})
	}
	return out
}
