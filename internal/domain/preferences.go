package domain

// DefaultProfile is the preferences profile used by the local TUI
const DefaultProfile = "default"

// Preferences is the selection and zoom state restored on startup.
// LastActive maps a host id to the session name last shown for it.
type Preferences struct {
	LastActive  map[string]string
	ScopeHostID string
	Zoom        float64
}
