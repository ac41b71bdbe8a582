package domain

import "hash/fnv"

// LocalHostID identifies the machine the backend runs on
const LocalHostID = "local"

// LocalHostName is the display name the backend reports for LocalHostID
const LocalHostName = "Local"

// DefaultSSHPort is used when a host is added without a port
const DefaultSSHPort = 22

// HostPalette is the fixed set of tab colors. The first entry is reserved
// for the local host.
var HostPalette = []string{
	"#4a9eff",
	"#10b981",
	"#f59e0b",
	"#8b5cf6",
	"#ef4444",
	"#06b6d4",
	"#ec4899",
	"#f97316",
}

// Host is a machine the backend can enumerate tmux sessions on.
// Enabled only controls whether the backend queries it; terminal resources
// already attached for its sessions stay alive.
type Host struct {
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Hostname string `json:"hostname" yaml:"hostname"`
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// DisplayName returns the name to show in tabs, falling back to the hostname
func (h Host) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	if h.Hostname != "" {
		return h.Hostname
	}
	return h.ID
}

// HostInput is the payload for creating or updating a host
type HostInput struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Name     string `json:"name" yaml:"name"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// Normalize fills defaults: port 22 and name equal to the hostname
func (in HostInput) Normalize() HostInput {
	if in.Port == 0 {
		in.Port = DefaultSSHPort
	}
	if in.Name == "" {
		in.Name = in.Hostname
	}
	return in
}

// HostColor returns a stable palette color for a host id.
// The local host always gets the first color.
func HostColor(hostID string) string {
	if hostID == "" || hostID == LocalHostID {
		return HostPalette[0]
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(hostID))
	idx := h.Sum32() % uint32(len(HostPalette)-1)
	return HostPalette[idx+1]
}
