package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/library"
	"github.com/sigmaSd/AlbumCam/internal/settings"
)

// RegistryService owns the ordered location list and the current selection.
// Location names are unique case-insensitively, both among locations and
// against existing library albums; the default location (id "1") can never be
// removed.
type RegistryService interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, name string) (*domain.Location, error)
	ImportFromAlbum(ctx context.Context, albumName string) (*domain.Location, error)
	Remove(ctx context.Context, id string) error
	Select(ctx context.Context, id string) error
	SelectNext(ctx context.Context) (*domain.Location, error)
	SelectPrevious(ctx context.Context) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, string)
	Selected(ctx context.Context) (*domain.Location, error)
}

type registryService struct {
	store   *settings.Store
	library library.Library

	mu         sync.Mutex
	locations  []domain.Location
	selectedID string
}

func NewRegistryService(store *settings.Store, lib library.Library) RegistryService {
	return &registryService{
		store:      store,
		library:    lib,
		locations:  []domain.Location{domain.DefaultLocation()},
		selectedID: domain.DefaultLocationID,
	}
}

// Load restores the registry from the settings store. A selection referencing
// a location that no longer exists falls back to the default.
func (s *registryService) Load(ctx context.Context) error {
	loaded := s.store.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations = loaded.Locations
	s.selectedID = loaded.SelectedLocationID
	if s.findLocked(s.selectedID) == nil {
		s.selectedID = domain.DefaultLocationID
	}
	return nil
}

func (s *registryService) Add(ctx context.Context, name string) (*domain.Location, error) {
	trimmed := strings.TrimSpace(name)
	if err := domain.ValidateAlbumName(trimmed); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTakenLocked(trimmed) {
		return nil, domain.ErrDuplicateName
	}
	if taken, err := s.albumNameTaken(ctx, trimmed); err == nil && taken {
		return nil, domain.ErrDuplicateName
	}

	location := domain.NewLocation(trimmed)
	s.locations = append(s.locations, location)
	s.selectedID = location.ID
	s.persistLocked(ctx)
	return &location, nil
}

// ImportFromAlbum adopts a pre-existing library album as a location. The album
// already exists, so only location-name collisions are checked.
func (s *registryService) ImportFromAlbum(ctx context.Context, albumName string) (*domain.Location, error) {
	trimmed := strings.TrimSpace(albumName)
	if err := domain.ValidateAlbumName(trimmed); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTakenLocked(trimmed) {
		return nil, domain.ErrDuplicateName
	}

	location := domain.NewLocation(trimmed)
	s.locations = append(s.locations, location)
	s.selectedID = location.ID
	s.persistLocked(ctx)
	return &location, nil
}

func (s *registryService) Remove(ctx context.Context, id string) error {
	if id == domain.DefaultLocationID {
		return domain.ErrProtectedEntity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.locations[:0:0]
	for _, location := range s.locations {
		if location.ID != id {
			kept = append(kept, location)
		}
	}
	if len(kept) == len(s.locations) {
		return nil
	}

	s.locations = kept
	if s.selectedID == id {
		s.selectedID = domain.DefaultLocationID
	}
	s.persistLocked(ctx)
	return nil
}

// Select is a no-op for unknown ids; a stale id from the UI is not an error.
func (s *registryService) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(id) == nil {
		return nil
	}
	if s.selectedID == id {
		return nil
	}
	s.selectedID = id
	s.persistLocked(ctx)
	return nil
}

func (s *registryService) SelectNext(ctx context.Context) (*domain.Location, error) {
	return s.shiftSelection(ctx, 1)
}

func (s *registryService) SelectPrevious(ctx context.Context) (*domain.Location, error) {
	return s.shiftSelection(ctx, -1)
}

func (s *registryService) shiftSelection(ctx context.Context, delta int) (*domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := 0
	for i, location := range s.locations {
		if location.ID == s.selectedID {
			current = i
			break
		}
	}

	next := (current + delta + len(s.locations)) % len(s.locations)
	location := s.locations[next]
	if location.ID != s.selectedID {
		s.selectedID = location.ID
		s.persistLocked(ctx)
	}
	return &location, nil
}

func (s *registryService) List(ctx context.Context) ([]domain.Location, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locations := make([]domain.Location, len(s.locations))
	copy(locations, s.locations)
	return locations, s.selectedID
}

func (s *registryService) Selected(ctx context.Context) (*domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if location := s.findLocked(s.selectedID); location != nil {
		found := *location
		return &found, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrInvalidState, s.selectedID)
}

func (s *registryService) findLocked(id string) *domain.Location {
	for i := range s.locations {
		if s.locations[i].ID == id {
			return &s.locations[i]
		}
	}
	return nil
}

func (s *registryService) nameTakenLocked(name string) bool {
	for _, location := range s.locations {
		if strings.EqualFold(location.Name, name) {
			return true
		}
	}
	return false
}

// albumNameTaken checks the library for a clashing album. A library failure
// counts as not taken; the later reconcile will surface real problems.
func (s *registryService) albumNameTaken(ctx context.Context, name string) (bool, error) {
	album, err := s.library.GetAlbumByName(ctx, name)
	if err != nil {
		log.Printf("Error checking album name: %v", err)
		return false, err
	}
	return album != nil, nil
}

// persistLocked writes the whole (locations, selection) pair after every
// mutation. Persistence failures are logged, not surfaced; the in-memory
// registry stays authoritative for the session.
func (s *registryService) persistLocked(ctx context.Context) {
	if err := s.store.SaveLocations(ctx, s.locations); err != nil {
		log.Printf("Error saving locations: %v", err)
	}
	if err := s.store.SaveSelectedLocationID(ctx, s.selectedID); err != nil {
		log.Printf("Error saving selected location: %v", err)
	}
}
