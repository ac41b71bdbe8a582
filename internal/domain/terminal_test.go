package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestProxyConnection_Resolve(t *testing.T) {
	origin := mustURL(t, "https://mux.example.com:8443/app")

	addr, err := ProxyConnection{TerminalID: "abc123"}.Resolve(origin)

	require.NoError(t, err)
	assert.Equal(t, "https://mux.example.com:8443/terminal/abc123", addr.String())
}

func TestProxyConnection_RequiresTerminalID(t *testing.T) {
	_, err := ProxyConnection{}.Resolve(mustURL(t, "http://localhost:5000"))

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDirectConnection_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		conn     DirectConnection
		expected string
	}{
		{"explicit host over http", "http://backend:5000", DirectConnection{Host: "10.0.0.5", Port: 7681}, "http://10.0.0.5:7681"},
		{"scheme follows https origin", "https://backend", DirectConnection{Host: "10.0.0.5", Port: 7681}, "https://10.0.0.5:7681"},
		{"falls back to origin hostname", "http://backend:5000", DirectConnection{Port: 7682}, "http://backend:7682"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := tt.conn.Resolve(mustURL(t, tt.origin))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}

func TestDirectConnection_InvalidPort(t *testing.T) {
	_, err := DirectConnection{Host: "h", Port: 0}.Resolve(mustURL(t, "http://backend"))
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = DirectConnection{Host: "h", Port: 70000}.Resolve(mustURL(t, "http://backend"))
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNewTerminalAddress(t *testing.T) {
	addr, err := NewTerminalAddress(" http://host:7681 ")
	require.NoError(t, err)
	assert.Equal(t, "http://host:7681", addr.String())
	assert.False(t, addr.IsZero())

	_, err = NewTerminalAddress("/terminal/1")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestHostColor(t *testing.T) {
	assert.Equal(t, "#4a9eff", HostColor(LocalHostID))
	assert.Equal(t, "#4a9eff", HostColor(""))

	c := HostColor("a1b2c3d4")
	assert.Equal(t, c, HostColor("a1b2c3d4"), "color must be stable")
	assert.Contains(t, HostPalette[1:], c)
}

func TestHostInput_Normalize(t *testing.T) {
	in := HostInput{Hostname: "box.lan"}.Normalize()

	assert.Equal(t, DefaultSSHPort, in.Port)
	assert.Equal(t, "box.lan", in.Name)
}
