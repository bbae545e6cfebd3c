package service

import (
	"context"

	"github.com/sigmaSd/AlbumCam/internal/settings"
)

// SettingsService exposes the feature toggles that live outside the location
// registry. Haptic feedback is the only one; it defaults to enabled when the
// key was never written.
type SettingsService interface {
	HapticEnabled(ctx context.Context) bool
	SetHapticEnabled(ctx context.Context, enabled bool) error
}

type settingsService struct {
	store *settings.Store
}

func NewSettingsService(store *settings.Store) SettingsService {
	return &settingsService{store: store}
}

func (s *settingsService) HapticEnabled(ctx context.Context) bool {
	return s.store.GetHapticEnabled(ctx)
}

func (s *settingsService) SetHapticEnabled(ctx context.Context, enabled bool) error {
	return s.store.SaveHapticEnabled(ctx, enabled)
}
