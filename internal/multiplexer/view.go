package multiplexer

import (
	"fmt"

	"github.com/renato0307/muxdeck/internal/domain"
)

// HostTab is one entry of the host tab bar
type HostTab struct {
	Active bool
	Color  string
	Count  int
	HostID string
	Name   string
}

// SessionTab is one entry of the session tab bar
type SessionTab struct {
	Active   bool
	Attached bool
	Key      domain.SessionKey
	Pending  bool
	Tooltip  string
	Warm     bool
	Windows  int
}

// View is everything the UI renders from the multiplexer state
type View struct {
	Active      domain.SessionKey
	HostTabs    []HostTab
	ListError   string
	Scope       string
	SessionTabs []SessionTab
	Visible     domain.SessionKey
	ZoomPercent int
}

// ActiveTab returns the active session tab, if it is in the list
func (v View) ActiveTab() (SessionTab, bool) {
	for _, t := range v.SessionTabs {
		if t.Active {
			return t, true
		}
	}
	return SessionTab{}, false
}

// Derive builds host and session tabs from a session list and selection.
// Host tabs follow the order hosts first appear in the list; session tabs
// only cover the scope host. listErr replaces the session tabs.
func Derive(sessions []domain.Session, scope string, active domain.SessionKey, listErr error) View {
	v := View{Active: active, Scope: scope}

	index := make(map[string]int)
	for _, sess := range sessions {
		key := sess.Key()
		i, seen := index[key.HostID]
		if !seen {
			i = len(v.HostTabs)
			index[key.HostID] = i
			v.HostTabs = append(v.HostTabs, HostTab{
				Active: key.HostID == scope,
				Color:  sess.Color(),
				HostID: key.HostID,
				Name:   sess.Label(),
			})
		}
		v.HostTabs[i].Count++
	}

	if listErr != nil {
		v.ListError = listErr.Error()
		return v
	}

	for _, sess := range sessions {
		key := sess.Key()
		if key.HostID != scope {
			continue
		}
		v.SessionTabs = append(v.SessionTabs, SessionTab{
			Active:   key == active,
			Attached: sess.Attached,
			Key:      key,
			Tooltip:  tooltip(sess),
			Windows:  sess.Windows,
		})
	}

	return v
}

func tooltip(sess domain.Session) string {
	windows := "windows"
	if sess.Windows == 1 {
		windows = "window"
	}
	tip := fmt.Sprintf("%s @ %s · %d %s", sess.Name, sess.Label(), sess.Windows, windows)
	if sess.Attached {
		tip += " · attached"
	}
	return tip
}
