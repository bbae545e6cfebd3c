package settings_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/settings"
)

type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
	fail bool
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (kv *memoryKV) Get(ctx context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.fail {
		return "", errors.New("kv offline")
	}
	value, ok := kv.data[key]
	if !ok {
		return "", settings.ErrNotFound
	}
	return value, nil
}

func (kv *memoryKV) Set(ctx context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.fail {
		return errors.New("kv offline")
	}
	kv.data[key] = value
	return nil
}

func TestStore_Defaults(t *testing.T) {
	ctx := context.Background()
	store := settings.NewStore(newMemoryKV())

	loaded := store.Load(ctx)

	assert.Equal(t, []domain.Location{domain.DefaultLocation()}, loaded.Locations)
	assert.Equal(t, domain.DefaultLocationID, loaded.SelectedLocationID)
	assert.True(t, loaded.HapticEnabled)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := settings.NewStore(newMemoryKV())

	locations := []domain.Location{
		domain.DefaultLocation(),
		{ID: "1700000000000", Name: "Vacation", Path: "DCIM/Vacation"},
	}
	assert.NoError(t, store.SaveLocations(ctx, locations))
	assert.NoError(t, store.SaveSelectedLocationID(ctx, "1700000000000"))
	assert.NoError(t, store.SaveHapticEnabled(ctx, false))

	loaded := store.Load(ctx)

	assert.Equal(t, locations, loaded.Locations)
	assert.Equal(t, "1700000000000", loaded.SelectedLocationID)
	assert.False(t, loaded.HapticEnabled)
}

func TestStore_CorruptValuesFallBack(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	store := settings.NewStore(kv)

	assert.NoError(t, kv.Set(ctx, "@camera_locations", "{not json"))
	assert.NoError(t, kv.Set(ctx, "@haptic_enabled", "maybe"))

	loaded := store.Load(ctx)

	assert.Equal(t, []domain.Location{domain.DefaultLocation()}, loaded.Locations)
	assert.True(t, loaded.HapticEnabled)
}

func TestStore_BackendFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	kv.fail = true
	store := settings.NewStore(kv)

	loaded := store.Load(ctx)

	assert.Equal(t, []domain.Location{domain.DefaultLocation()}, loaded.Locations)
	assert.Equal(t, domain.DefaultLocationID, loaded.SelectedLocationID)
	assert.True(t, loaded.HapticEnabled)

	// Reads fall back silently; writes must surface the failure.
	assert.Error(t, store.SaveLocations(ctx, loaded.Locations))
	assert.Error(t, store.SaveHapticEnabled(ctx, true))
}

func TestStore_SaveAll(t *testing.T) {
	ctx := context.Background()
	store := settings.NewStore(newMemoryKV())

	saved := domain.Settings{
		Locations:          []domain.Location{domain.DefaultLocation()},
		SelectedLocationID: domain.DefaultLocationID,
		HapticEnabled:      false,
	}
	assert.NoError(t, store.SaveAll(ctx, saved))

	assert.Equal(t, saved, store.Load(ctx))
}
