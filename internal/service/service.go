package service

import (
	"github.com/sigmaSd/AlbumCam/internal/camera"
	"github.com/sigmaSd/AlbumCam/internal/config"
	"github.com/sigmaSd/AlbumCam/internal/library"
	"github.com/sigmaSd/AlbumCam/internal/settings"
)

type Services struct {
	Registry RegistryService
	Resolver ResolverService
	Capture  CaptureService
	Settings SettingsService
}

func NewServices(device camera.Device, lib library.Library, store *settings.Store, cfg *config.Config) *Services {
	registryService := NewRegistryService(store, lib)
	resolverService := NewResolverService(lib)
	captureService := NewCaptureService(device, registryService, resolverService, lib, cfg.StagingDir)
	settingsService := NewSettingsService(store)

	return &Services{
		Registry: registryService,
		Resolver: resolverService,
		Capture:  captureService,
		Settings: settingsService,
	}
}
