package domain

import "errors"

var (
	ErrValidation       = errors.New("invalid album name")
	ErrDuplicateName    = errors.New("an album with this name already exists")
	ErrProtectedEntity  = errors.New("the default location cannot be removed")
	ErrPermissionDenied = errors.New("permission not granted")
	ErrNotReady         = errors.New("camera is not ready")
	ErrCaptureBusy      = errors.New("a capture is already in progress")
	ErrInvalidState     = errors.New("selected location not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrAlbumNotFound    = errors.New("album not found")
	ErrAssetNotFound    = errors.New("asset not found")
)
