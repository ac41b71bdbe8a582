package storage

import (
	"sort"

	"github.com/renato0307/muxdeck/internal/domain"
)

// preferencesToDomain converts the stored rows to domain.Preferences
func preferencesToDomain(m PreferenceModel, selections []HostSelectionModel) domain.Preferences {
	prefs := domain.Preferences{
		LastActive:  make(map[string]string, len(selections)),
		ScopeHostID: m.ScopeHostID,
		Zoom:        m.Zoom,
	}
	for _, s := range selections {
		prefs.LastActive[s.HostID] = s.SessionName
	}
	return prefs
}

// domainToHostSelections converts LastActive into rows, sorted by host id.
// Hosts with an empty session name are skipped.
func domainToHostSelections(profile string, prefs domain.Preferences) []HostSelectionModel {
	hostIDs := make([]string, 0, len(prefs.LastActive))
	for hostID, name := range prefs.LastActive {
		if hostID == "" || name == "" {
			continue
		}
		hostIDs = append(hostIDs, hostID)
	}
	sort.Strings(hostIDs)

	rows := make([]HostSelectionModel, 0, len(hostIDs))
	for _, hostID := range hostIDs {
		rows = append(rows, HostSelectionModel{
			HostID:      hostID,
			Profile:     profile,
			SessionName: prefs.LastActive[hostID],
		})
	}
	return rows
}
