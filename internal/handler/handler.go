package handler

import (
	"github.com/sigmaSd/AlbumCam/internal/camera"
	"github.com/sigmaSd/AlbumCam/internal/config"
	"github.com/sigmaSd/AlbumCam/internal/library"
	"github.com/sigmaSd/AlbumCam/internal/service"
)

type Handlers struct {
	Location *LocationHandler
	Capture  *CaptureHandler
	Album    *AlbumHandler
	Settings *SettingsHandler
	Camera   *CameraHandler
}

func NewHandlers(services *service.Services, device camera.Device, lib library.Library, cfg *config.Config) *Handlers {
	return &Handlers{
		Location: NewLocationHandler(services.Registry, services.Capture),
		Capture:  NewCaptureHandler(services.Capture, cfg),
		Album:    NewAlbumHandler(lib),
		Settings: NewSettingsHandler(services.Settings),
		Camera:   NewCameraHandler(device),
	}
}
