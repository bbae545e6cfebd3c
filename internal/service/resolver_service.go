package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/library"
)

// ResolverService reconciles a freshly committed asset with its destination
// album: get-or-create by name, then append. Calls are serialized per album
// name so two concurrent reconciles for a never-seen name create exactly one
// album.
type ResolverService interface {
	Reconcile(ctx context.Context, asset *domain.Asset, location domain.Location) error
}

type resolverService struct {
	library library.Library

	mu    sync.Mutex
	names map[string]*sync.Mutex
}

func NewResolverService(lib library.Library) ResolverService {
	return &resolverService{
		library: lib,
		names:   make(map[string]*sync.Mutex),
	}
}

func (s *resolverService) Reconcile(ctx context.Context, asset *domain.Asset, location domain.Location) error {
	// The default location maps to the platform's default roll; the asset is
	// already there by virtue of its creation.
	if location.IsDefault() {
		return nil
	}

	lock := s.nameLock(location.Name)
	lock.Lock()
	defer lock.Unlock()

	album, err := s.library.GetAlbumByName(ctx, location.Name)
	if err != nil {
		return fmt.Errorf("failed to look up album %s: %w", location.Name, err)
	}

	if album == nil {
		if _, err := s.library.CreateAlbum(ctx, location.Name, asset); err != nil {
			return fmt.Errorf("failed to create album %s: %w", location.Name, err)
		}
		return nil
	}

	if err := s.library.AddAssetsToAlbum(ctx, []*domain.Asset{asset}, album); err != nil {
		return fmt.Errorf("failed to add asset to album %s: %w", location.Name, err)
	}
	return nil
}

func (s *resolverService) nameLock(name string) *sync.Mutex {
	key := strings.ToLower(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.names[key]
	if !ok {
		lock = &sync.Mutex{}
		s.names[key] = lock
	}
	return lock
}
