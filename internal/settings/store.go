// Package settings persists the small app state blob: the location list, the
// selected location id and the haptic toggle. Reads fall back to defaults on
// any failure so the app always starts; writes propagate their errors.
package settings

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sigmaSd/AlbumCam/internal/domain"
)

const (
	keyLocations        = "@camera_locations"
	keySelectedLocation = "@selected_location"
	keyHapticEnabled    = "@haptic_enabled"
)

type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) GetLocations(ctx context.Context) []domain.Location {
	value, err := s.kv.Get(ctx, keyLocations)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("Error loading locations: %v", err)
		}
		return []domain.Location{domain.DefaultLocation()}
	}

	var locations []domain.Location
	if err := json.Unmarshal([]byte(value), &locations); err != nil {
		log.Printf("Error decoding locations: %v", err)
		return []domain.Location{domain.DefaultLocation()}
	}
	if len(locations) == 0 {
		return []domain.Location{domain.DefaultLocation()}
	}
	return locations
}

func (s *Store) SaveLocations(ctx context.Context, locations []domain.Location) error {
	encoded, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keyLocations, string(encoded))
}

func (s *Store) GetSelectedLocationID(ctx context.Context) string {
	value, err := s.kv.Get(ctx, keySelectedLocation)
	if err != nil || value == "" {
		if err != nil && err != ErrNotFound {
			log.Printf("Error loading selected location: %v", err)
		}
		return domain.DefaultLocationID
	}
	return value
}

func (s *Store) SaveSelectedLocationID(ctx context.Context, locationID string) error {
	return s.kv.Set(ctx, keySelectedLocation, locationID)
}

// GetHapticEnabled defaults to true; the key is absent on installs that
// predate the toggle.
func (s *Store) GetHapticEnabled(ctx context.Context) bool {
	value, err := s.kv.Get(ctx, keyHapticEnabled)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("Error loading haptic setting: %v", err)
		}
		return true
	}

	var enabled bool
	if err := json.Unmarshal([]byte(value), &enabled); err != nil {
		log.Printf("Error decoding haptic setting: %v", err)
		return true
	}
	return enabled
}

func (s *Store) SaveHapticEnabled(ctx context.Context, enabled bool) error {
	encoded, err := json.Marshal(enabled)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keyHapticEnabled, string(encoded))
}

func (s *Store) Load(ctx context.Context) domain.Settings {
	return domain.Settings{
		Locations:          s.GetLocations(ctx),
		SelectedLocationID: s.GetSelectedLocationID(ctx),
		HapticEnabled:      s.GetHapticEnabled(ctx),
	}
}

func (s *Store) SaveAll(ctx context.Context, settings domain.Settings) error {
	if err := s.SaveLocations(ctx, settings.Locations); err != nil {
		return err
	}
	if err := s.SaveSelectedLocationID(ctx, settings.SelectedLocationID); err != nil {
		return err
	}
	return s.SaveHapticEnabled(ctx, settings.HapticEnabled)
}
