package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sigmaSd/AlbumCam/internal/camera"
	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/service"
	"github.com/sigmaSd/AlbumCam/internal/settings"
)

func writeTempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not a real jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newCapturePipeline(t *testing.T, device camera.Device, lib *mockLibrary) (service.CaptureService, service.RegistryService) {
	t.Helper()
	store := settings.NewStore(newMemoryKV())
	registry := service.NewRegistryService(store, lib)
	resolver := service.NewResolverService(lib)
	return service.NewCaptureService(device, registry, resolver, lib, t.TempDir()), registry
}

func TestCaptureService_Capture(t *testing.T) {
	ctx := context.Background()

	t.Run("Default Location Skips Album Bookkeeping", func(t *testing.T) {
		frame := writeTempImage(t, "frame.jpg")
		device := new(mockDevice)
		device.On("Ready").Return(true)
		device.On("Capture", ctx).Return(&camera.Photo{URI: frame, Width: 640, Height: 480}, nil).Once()

		asset := &domain.Asset{ID: uuid.New(), FileName: "IMG_20240101_120000.jpg"}
		lib := new(mockLibrary)
		lib.On("CreateAsset", ctx, mock.MatchedBy(func(uri string) bool {
			return strings.HasPrefix(filepath.Base(uri), "IMG_")
		})).Return(asset, nil).Once()
		lib.On("CountAllPhotos", ctx).Return(int64(7), nil).Once()

		svc, _ := newCapturePipeline(t, device, lib)
		result, err := svc.Capture(ctx)

		assert.NoError(t, err)
		assert.Equal(t, asset, result.Asset)
		assert.Equal(t, domain.DefaultLocationID, result.Location.ID)
		assert.Equal(t, int64(7), result.PhotoCount)

		lib.AssertExpectations(t)
		lib.AssertNotCalled(t, "CreateAlbum", mock.Anything, mock.Anything, mock.Anything)
		lib.AssertNotCalled(t, "AddAssetsToAlbum", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("New Location Creates Album With Captured Asset", func(t *testing.T) {
		frame := writeTempImage(t, "frame.jpg")
		device := new(mockDevice)
		device.On("Ready").Return(true)
		device.On("Capture", ctx).Return(&camera.Photo{URI: frame, Width: 640, Height: 480}, nil).Once()

		asset := &domain.Asset{ID: uuid.New(), FileName: "IMG_20240101_120000.jpg"}
		lib := new(mockLibrary)
		// First lookup is the duplicate check on Add, second is the
		// resolver's get-or-create, third is the photo count afterwards.
		lib.On("GetAlbumByName", ctx, "Vacation").Return(nil, nil).Twice()
		lib.On("GetAlbumByName", ctx, "Vacation").
			Return(&domain.Album{Title: "Vacation", AssetCount: 1}, nil).Once()
		lib.On("CreateAsset", ctx, mock.Anything).Return(asset, nil).Once()
		lib.On("CreateAlbum", ctx, "Vacation", asset).
			Return(&domain.Album{Title: "Vacation", AssetCount: 1}, nil).Once()

		svc, registry := newCapturePipeline(t, device, lib)
		_, err := registry.Add(ctx, "Vacation")
		assert.NoError(t, err)

		result, err := svc.Capture(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Vacation", result.Location.Name)
		assert.Equal(t, int64(1), result.PhotoCount)

		lib.AssertExpectations(t)
		lib.AssertNumberOfCalls(t, "CreateAsset", 1)
		lib.AssertNumberOfCalls(t, "CreateAlbum", 1)
	})

	t.Run("Reconcile Failure Keeps The Photo", func(t *testing.T) {
		frame := writeTempImage(t, "frame.jpg")
		device := new(mockDevice)
		device.On("Ready").Return(true)
		device.On("Capture", ctx).Return(&camera.Photo{URI: frame}, nil).Once()

		asset := &domain.Asset{ID: uuid.New()}
		lib := new(mockLibrary)
		lib.On("GetAlbumByName", ctx, "Vacation").Return(nil, nil).Once()
		lib.On("CreateAsset", ctx, mock.Anything).Return(asset, nil).Once()
		lib.On("GetAlbumByName", ctx, "Vacation").
			Return(nil, errors.New("library offline"))

		svc, registry := newCapturePipeline(t, device, lib)
		_, err := registry.Add(ctx, "Vacation")
		assert.NoError(t, err)

		result, err := svc.Capture(ctx)

		assert.NoError(t, err)
		assert.Equal(t, asset, result.Asset)
		// Album lookup is down, so the advisory count degrades to zero.
		assert.Equal(t, int64(0), result.PhotoCount)
	})

	t.Run("Not Ready", func(t *testing.T) {
		device := new(mockDevice)
		device.On("Ready").Return(false)

		svc, _ := newCapturePipeline(t, device, new(mockLibrary))
		result, err := svc.Capture(ctx)

		assert.ErrorIs(t, err, domain.ErrNotReady)
		assert.Nil(t, result)
	})

	t.Run("Concurrent Capture Is Rejected", func(t *testing.T) {
		frame := writeTempImage(t, "frame.jpg")
		started := make(chan struct{})
		release := make(chan struct{})

		device := new(mockDevice)
		device.On("Ready").Return(true)
		device.On("Capture", ctx).Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).Return(&camera.Photo{URI: frame}, nil).Once()

		asset := &domain.Asset{ID: uuid.New()}
		lib := new(mockLibrary)
		lib.On("CreateAsset", ctx, mock.Anything).Return(asset, nil).Once()
		lib.On("CountAllPhotos", ctx).Return(int64(1), nil).Once()

		svc, _ := newCapturePipeline(t, device, lib)

		done := make(chan error, 1)
		go func() {
			_, err := svc.Capture(ctx)
			done <- err
		}()

		<-started
		result, err := svc.Capture(ctx)
		assert.ErrorIs(t, err, domain.ErrCaptureBusy)
		assert.Nil(t, result)

		close(release)
		assert.NoError(t, <-done)
	})
}

func TestCaptureService_PhotoCount(t *testing.T) {
	ctx := context.Background()
	device := new(mockDevice)

	t.Run("Default Uses Global Count", func(t *testing.T) {
		lib := new(mockLibrary)
		lib.On("CountAllPhotos", ctx).Return(int64(42), nil).Once()

		svc, _ := newCapturePipeline(t, device, lib)
		assert.Equal(t, int64(42), svc.PhotoCount(ctx, domain.DefaultLocation()))
	})

	t.Run("Named Album Reports Its Count", func(t *testing.T) {
		lib := new(mockLibrary)
		lib.On("GetAlbumByName", ctx, "Vacation").
			Return(&domain.Album{Title: "Vacation", AssetCount: 5}, nil).Once()

		svc, _ := newCapturePipeline(t, device, lib)
		assert.Equal(t, int64(5), svc.PhotoCount(ctx, domain.NewLocation("Vacation")))
	})

	t.Run("Missing Album Counts Zero", func(t *testing.T) {
		lib := new(mockLibrary)
		lib.On("GetAlbumByName", ctx, "Vacation").Return(nil, nil).Once()

		svc, _ := newCapturePipeline(t, device, lib)
		assert.Equal(t, int64(0), svc.PhotoCount(ctx, domain.NewLocation("Vacation")))
	})

	t.Run("Failures Degrade To Zero", func(t *testing.T) {
		lib := new(mockLibrary)
		lib.On("CountAllPhotos", ctx).Return(int64(0), errors.New("library offline")).Once()
		lib.On("GetAlbumByName", ctx, "Vacation").Return(nil, errors.New("library offline")).Once()

		svc, _ := newCapturePipeline(t, device, lib)
		assert.Equal(t, int64(0), svc.PhotoCount(ctx, domain.DefaultLocation()))
		assert.Equal(t, int64(0), svc.PhotoCount(ctx, domain.NewLocation("Vacation")))
	})
}

func TestCaptureService_ReceiveShared(t *testing.T) {
	ctx := context.Background()
	device := new(mockDevice)

	t.Run("One Bad Image Does Not Block The Rest", func(t *testing.T) {
		imageA := writeTempImage(t, "a.jpg")
		imageB := writeTempImage(t, "b.jpg")

		lib := new(mockLibrary)
		lib.On("CreateAsset", ctx, mock.MatchedBy(func(uri string) bool {
			return strings.HasSuffix(uri, "_a.jpg")
		})).Return(nil, errors.New("commit failed")).Once()
		lib.On("CreateAsset", ctx, mock.MatchedBy(func(uri string) bool {
			return strings.HasSuffix(uri, "_b.jpg")
		})).Return(&domain.Asset{ID: uuid.New()}, nil).Once()

		svc, _ := newCapturePipeline(t, device, lib)
		result, err := svc.ReceiveShared(ctx, []domain.SharedImage{
			{URI: imageA, Name: "a.jpg", MimeType: "image/jpeg"},
			{URI: imageB, Name: "b.jpg", MimeType: "image/jpeg"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.SavedCount)
		lib.AssertExpectations(t)
	})

	t.Run("Non Default Location Reconciles Each Image", func(t *testing.T) {
		imageA := writeTempImage(t, "a.jpg")
		imageB := writeTempImage(t, "b.jpg")

		album := &domain.Album{Title: "Vacation", AssetCount: 1}
		lib := new(mockLibrary)
		lib.On("GetAlbumByName", ctx, "Vacation").Return(nil, nil).Twice()
		lib.On("GetAlbumByName", ctx, "Vacation").Return(album, nil).Once()
		lib.On("CreateAsset", ctx, mock.Anything).
			Return(&domain.Asset{ID: uuid.New()}, nil).Twice()
		lib.On("CreateAlbum", ctx, "Vacation", mock.Anything).Return(album, nil).Once()
		lib.On("AddAssetsToAlbum", ctx, mock.Anything, album).Return(nil).Once()

		svc, registry := newCapturePipeline(t, device, lib)
		_, err := registry.Add(ctx, "Vacation")
		assert.NoError(t, err)

		result, err := svc.ReceiveShared(ctx, []domain.SharedImage{
			{URI: imageA, Name: "a.jpg", MimeType: "image/jpeg"},
			{URI: imageB, Name: "b.jpg", MimeType: "image/jpeg"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.SavedCount)
		lib.AssertExpectations(t)
		lib.AssertNumberOfCalls(t, "CreateAlbum", 1)
	})

	t.Run("Missing Source File Is Skipped", func(t *testing.T) {
		lib := new(mockLibrary)

		svc, _ := newCapturePipeline(t, device, lib)
		result, err := svc.ReceiveShared(ctx, []domain.SharedImage{
			{URI: "/nonexistent/gone.jpg", Name: "gone.jpg", MimeType: "image/jpeg"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.SavedCount)
		lib.AssertNotCalled(t, "CreateAsset", mock.Anything, mock.Anything)
	})
}
