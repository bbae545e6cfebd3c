package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sigmaSd/AlbumCam/internal/camera"
	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/library"
)

// CaptureService drives the capture-to-storage pipeline: take or receive a
// photo, commit it to the library, reconcile it into the destination album and
// report the resulting photo count. Album reconciliation is fail-soft: once
// the asset is committed the photo is never lost, only its album placement may
// be incomplete.
type CaptureService interface {
	Capture(ctx context.Context) (*domain.CaptureResult, error)
	PhotoCount(ctx context.Context, location domain.Location) int64
	ReceiveShared(ctx context.Context, images []domain.SharedImage) (*domain.ShareResult, error)
}

type captureService struct {
	device     camera.Device
	registry   RegistryService
	resolver   ResolverService
	library    library.Library
	stagingDir string

	inFlight atomic.Bool
}

func NewCaptureService(device camera.Device, registry RegistryService, resolver ResolverService, lib library.Library, stagingDir string) CaptureService {
	return &captureService{
		device:     device,
		registry:   registry,
		resolver:   resolver,
		library:    lib,
		stagingDir: stagingDir,
	}
}

func (s *captureService) Capture(ctx context.Context) (*domain.CaptureResult, error) {
	// One capture at a time; a double-tap must not race itself into
	// duplicate assets or albums.
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrCaptureBusy
	}
	defer s.inFlight.Store(false)

	if !s.device.Ready() {
		return nil, domain.ErrNotReady
	}

	photo, err := s.device.Capture(ctx)
	if err != nil {
		return nil, err
	}

	location, err := s.registry.Selected(ctx)
	if err != nil {
		return nil, err
	}

	staged, err := s.stageFile(photo.URI, capturedFileName(photo.URI))
	if err != nil {
		return nil, err
	}

	asset, err := s.library.CreateAsset(ctx, staged)
	if err != nil {
		s.cleanup(staged)
		return nil, err
	}

	if err := s.resolver.Reconcile(ctx, asset, *location); err != nil {
		log.Printf("Could not save to album %s, saved to camera roll: %v", location.Name, err)
	}

	s.cleanup(staged)

	return &domain.CaptureResult{
		Asset:      asset,
		Location:   *location,
		PhotoCount: s.PhotoCount(ctx, *location),
	}, nil
}

// PhotoCount is advisory UI state, never authoritative: it has no error path
// and every underlying failure degrades to 0.
func (s *captureService) PhotoCount(ctx context.Context, location domain.Location) int64 {
	if location.IsDefault() {
		total, err := s.library.CountAllPhotos(ctx)
		if err != nil {
			log.Printf("Error getting photo count: %v", err)
			return 0
		}
		return total
	}

	album, err := s.library.GetAlbumByName(ctx, location.Name)
	if err != nil {
		log.Printf("Could not get count for album %s: %v", location.Name, err)
		return 0
	}
	if album == nil {
		return 0
	}
	return album.AssetCount
}

// ReceiveShared files externally shared images into the selected location.
// Each image is processed independently; one bad image never blocks the rest.
func (s *captureService) ReceiveShared(ctx context.Context, images []domain.SharedImage) (*domain.ShareResult, error) {
	location, err := s.registry.Selected(ctx)
	if err != nil {
		return nil, err
	}

	saved := 0
	for _, image := range images {
		if err := s.saveShared(ctx, image, *location); err != nil {
			log.Printf("Error saving image %s: %v", image.Name, err)
			continue
		}
		saved++
	}

	return &domain.ShareResult{SavedCount: saved}, nil
}

func (s *captureService) saveShared(ctx context.Context, image domain.SharedImage, location domain.Location) error {
	name := fmt.Sprintf("shared_%d_%s", time.Now().UnixMilli(), image.Name)
	staged, err := s.stageFile(image.URI, name)
	if err != nil {
		return err
	}
	defer s.cleanup(staged)

	asset, err := s.library.CreateAsset(ctx, staged)
	if err != nil {
		return err
	}

	if err := s.resolver.Reconcile(ctx, asset, location); err != nil {
		// Fail-soft: the photo is committed, only its placement failed.
		log.Printf("Could not save to album %s, saved to camera roll: %v", location.Name, err)
	}
	return nil
}

// stageFile copies a transient image into the staging directory under its
// final name before it is committed to the library.
func (s *captureService) stageFile(srcURI, destName string) (string, error) {
	src, err := os.Open(srcURI)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", srcURI, err)
	}
	defer src.Close()

	destPath := filepath.Join(s.stagingDir, destName)
	dest, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", err
	}
	return destPath, nil
}

func (s *captureService) cleanup(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not clean up temporary file: %v", err)
	}
}

// capturedFileName is IMG_YYYYMMDD_HHMMSS with the source extension kept.
func capturedFileName(srcURI string) string {
	ext := strings.ToLower(filepath.Ext(srcURI))
	if ext == "" {
		ext = ".jpg"
	}
	return time.Now().Format("IMG_20060102_150405") + ext
}
