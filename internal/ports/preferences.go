package ports

import (
	"context"

	"github.com/renato0307/muxdeck/internal/domain"
)

// PreferencesRepository persists selection memory and zoom per profile
type PreferencesRepository interface {
	Close() error
	LoadPreferences(ctx context.Context, profile string) (domain.Preferences, error)
	SavePreferences(ctx context.Context, profile string, prefs domain.Preferences) error
}
