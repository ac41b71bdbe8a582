package services

import (
	"context"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

// PreferencesService loads and saves the selection memory of one profile
type PreferencesService struct {
	profile string
	repo    ports.PreferencesRepository
}

// NewPreferencesService creates a PreferencesService. An empty profile means the default one.
func NewPreferencesService(repo ports.PreferencesRepository, profile string) *PreferencesService {
	if profile == "" {
		profile = domain.DefaultProfile
	}
	return &PreferencesService{profile: profile, repo: repo}
}

// Profile returns the profile name
func (s *PreferencesService) Profile() string {
	return s.profile
}

// Load returns stored preferences. Failures are logged and yield defaults.
func (s *PreferencesService) Load(ctx context.Context) domain.Preferences {
	prefs, err := s.repo.LoadPreferences(ctx, s.profile)
	if err != nil {
		logging.Logger.Warn("Failed to load preferences, using defaults", "profile", s.profile, "error", err)
		return domain.Preferences{LastActive: map[string]string{}, Zoom: 1.0}
	}
	return prefs
}

// Save stores prefs
func (s *PreferencesService) Save(ctx context.Context, prefs domain.Preferences) error {
	if err := s.repo.SavePreferences(ctx, s.profile, prefs); err != nil {
		logging.Logger.Error("Failed to save preferences", "profile", s.profile, "error", err)
		return err
	}
	return nil
}
