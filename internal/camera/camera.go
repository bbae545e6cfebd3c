// Package camera defines the capture device contract. The device is an owned
// resource with an explicit open/close lifecycle handed to the capture service
// at construction; implementations are swappable and business logic never
// branches on which backend is in use.
package camera

import "context"

type Facing string

const (
	FacingBack     Facing = "back"
	FacingFront    Facing = "front"
	FacingExternal Facing = "external"
)

// Info describes one available camera.
type Info struct {
	ID     string `json:"id"`
	Facing Facing `json:"facing"`
}

// Photo is a transient capture result. The file it points at is owned by the
// caller until it is committed into the library.
type Photo struct {
	URI    string `json:"uri"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Device interface {
	CheckPermission(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) (bool, error)
	ListCameras(ctx context.Context) ([]Info, error)
	Open(ctx context.Context, cameraID string) error
	Close() error
	// Ready reports whether the device is open and able to capture.
	Ready() bool
	Capture(ctx context.Context) (*Photo, error)
	SwitchFacing(ctx context.Context) error
	SetTorch(ctx context.Context, enabled bool) error
}
