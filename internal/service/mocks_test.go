package service_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/sigmaSd/AlbumCam/internal/camera"
	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/settings"
)

type mockLibrary struct {
	mock.Mock
}

func (m *mockLibrary) CreateAsset(ctx context.Context, uri string) (*domain.Asset, error) {
	args := m.Called(ctx, uri)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *mockLibrary) GetAlbumByName(ctx context.Context, name string) (*domain.Album, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *mockLibrary) CreateAlbum(ctx context.Context, name string, first *domain.Asset) (*domain.Album, error) {
	args := m.Called(ctx, name, first)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *mockLibrary) AddAssetsToAlbum(ctx context.Context, assets []*domain.Asset, album *domain.Album) error {
	args := m.Called(ctx, assets, album)
	return args.Error(0)
}

func (m *mockLibrary) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Album), args.Error(1)
}

func (m *mockLibrary) DeleteAlbum(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockLibrary) CountAllPhotos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockDevice struct {
	mock.Mock
}

func (m *mockDevice) CheckPermission(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockDevice) RequestPermission(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockDevice) ListCameras(ctx context.Context) ([]camera.Info, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]camera.Info), args.Error(1)
}

func (m *mockDevice) Open(ctx context.Context, cameraID string) error {
	args := m.Called(ctx, cameraID)
	return args.Error(0)
}

func (m *mockDevice) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockDevice) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockDevice) Capture(ctx context.Context) (*camera.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*camera.Photo), args.Error(1)
}

func (m *mockDevice) SwitchFacing(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockDevice) SetTorch(ctx context.Context, enabled bool) error {
	args := m.Called(ctx, enabled)
	return args.Error(0)
}

// memoryKV backs the settings store in tests with a plain map.
type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (kv *memoryKV) Get(ctx context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	value, ok := kv.data[key]
	if !ok {
		return "", settings.ErrNotFound
	}
	return value, nil
}

func (kv *memoryKV) Set(ctx context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return nil
}
