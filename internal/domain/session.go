package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// SessionKey identifies a tmux session across hosts.
// The same session name on two hosts yields two distinct keys.
type SessionKey struct {
	HostID string
	Name   string
}

// NewSessionKey builds a key, defaulting an empty host to the local host
func NewSessionKey(hostID, name string) SessionKey {
	if hostID == "" {
		hostID = LocalHostID
	}
	return SessionKey{HostID: hostID, Name: name}
}

// String renders the key as host:name
func (k SessionKey) String() string {
	return k.HostID + ":" + k.Name
}

// IsZero reports whether the key is unset
func (k SessionKey) IsZero() bool {
	return k.HostID == "" && k.Name == ""
}

// Session is one tmux session as reported by the backend list endpoint.
// Lists are replaced wholesale on every refresh.
type Session struct {
	Attached  bool       `json:"attached"`
	Created   FlexString `json:"created"`
	HostColor string     `json:"host_color"`
	HostID    string     `json:"host_id"`
	HostName  string     `json:"host_name"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Windows   int        `json:"windows"`
}

// Key returns the identity of the session
func (s Session) Key() SessionKey {
	return NewSessionKey(s.HostID, s.Name)
}

// Color returns the reported host color or the derived palette color
func (s Session) Color() string {
	if s.HostColor != "" {
		return s.HostColor
	}
	return HostColor(s.Key().HostID)
}

// Label returns the host display name for the session
func (s Session) Label() string {
	if s.HostName != "" {
		return s.HostName
	}
	if s.HostID == "" || s.HostID == LocalHostID {
		return LocalHostName
	}
	return s.HostID
}

// FlexString decodes JSON strings and numbers into a string.
// The backend reports tmux timestamps and terminal ids as either.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*f = FlexString(num.String())
	return nil
}

// String returns the underlying value
func (f FlexString) String() string {
	return string(f)
}

// Int returns the value parsed as an integer, or 0
func (f FlexString) Int() int64 {
	n, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SanitizeSessionName converts a user-entered name into a name tmux accepts.
// tmux rejects ':' and '.' in session names, so they become underscores
// together with whitespace, parentheses and slashes. Other punctuation is dropped.
func SanitizeSessionName(displayName string) string {
	var result strings.Builder
	lastWasUnderscore := false

	for _, r := range strings.TrimSpace(displayName) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-':
			result.WriteRune(r)
			lastWasUnderscore = false
		case r == '_':
			result.WriteRune('_')
			lastWasUnderscore = true
		case unicode.IsSpace(r) || strings.ContainsRune("():./", r):
			if !lastWasUnderscore && result.Len() > 0 {
				result.WriteRune('_')
				lastWasUnderscore = true
			}
		}
	}

	return strings.TrimRight(result.String(), "_")
}
