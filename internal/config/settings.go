package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/renato0307/muxdeck/internal/paths"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "zoom_in", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Sorted so the reported conflict is stable
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToAction := make(map[string]string)
	for _, name := range names {
		keys := k[name]
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

const (
	// DefaultAttachPendingTTL is how long an unanswered attach blocks a resend, in seconds
	DefaultAttachPendingTTL = 30
	// DefaultBackendURL is where the session manager listens by default
	DefaultBackendURL = "http://localhost:5000"
	// DefaultErrorClearDelay is how long errors stay on screen, in seconds
	DefaultErrorClearDelay = 10
	// DefaultRefreshInterval is the background session refresh period, in seconds
	DefaultRefreshInterval = 10
	// DefaultRequestTimeout bounds each backend HTTP call, in seconds
	DefaultRequestTimeout = 10
)

// Settings represents the structure of ~/.muxdeck/settings.json
type Settings struct {
	AttachPendingTTL *int              `json:"attach_pending_ttl,omitempty"`
	BackendURL       string            `json:"backend_url,omitempty"`
	Browser          string            `json:"browser,omitempty"`
	ChannelPath      string            `json:"channel_path,omitempty"`
	Cookie           string            `json:"cookie,omitempty"`
	DBPath           string            `json:"db_path,omitempty"`
	Debug            *bool             `json:"debug,omitempty"`
	ErrorClearDelay  *int              `json:"error_clear_delay,omitempty"`
	Keys             KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles      *int              `json:"max_log_files,omitempty"`
	OtelEndpoint     string            `json:"otel_endpoint,omitempty"`
	OtelHeaders      StringArray       `json:"otel_headers,omitempty"`
	Profile          string            `json:"profile,omitempty"`
	RefreshInterval  *int              `json:"refresh_interval,omitempty"`
	RequestTimeout   *int              `json:"request_timeout,omitempty"`
	SurfaceProbe     *bool             `json:"surface_probe,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// String joins the values with commas
func (sa StringArray) String() string {
	return strings.Join(sa, ",")
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $MUXDECK_HOME/settings.json (or ~/.muxdeck/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = paths.ExpandPath(settings.DBPath)
	}
	if settings.Browser != "" {
		settings.Browser = paths.ExpandPath(settings.Browser)
	}
	settings.BackendURL = strings.TrimRight(strings.TrimSpace(settings.BackendURL), "/")

	return &settings, nil
}

// SaveSettings saves settings to $MUXDECK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
