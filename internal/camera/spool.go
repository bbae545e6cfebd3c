package camera

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sigmaSd/AlbumCam/internal/domain"
)

// SpoolDevice captures by adopting frames from a spool directory that an
// external capture daemon writes into. Each subdirectory of the spool is one
// camera (its name carries the facing, e.g. "back0", "front0"); Capture claims
// the newest frame by moving it into the camera's taken/ subdirectory so a
// repeated capture never returns the same frame twice.
type SpoolDevice struct {
	spoolDir       string
	captureTimeout time.Duration

	mu        sync.Mutex
	currentID string
	torchOn   bool
}

func NewSpoolDevice(spoolDir string, captureTimeout time.Duration) *SpoolDevice {
	return &SpoolDevice{
		spoolDir:       spoolDir,
		captureTimeout: captureTimeout,
	}
}

func (d *SpoolDevice) CheckPermission(ctx context.Context) (bool, error) {
	info, err := os.Stat(d.spoolDir)
	if err != nil || !info.IsDir() {
		return false, nil
	}
	return true, nil
}

// RequestPermission creates the spool directory when it is missing. A second
// failure is terminal for the caller; there is no further prompt to give.
func (d *SpoolDevice) RequestPermission(ctx context.Context) (bool, error) {
	if granted, _ := d.CheckPermission(ctx); granted {
		return true, nil
	}
	if err := os.MkdirAll(d.spoolDir, 0o755); err != nil {
		return false, nil
	}
	return true, nil
}

func (d *SpoolDevice) ListCameras(ctx context.Context) ([]Info, error) {
	entries, err := os.ReadDir(d.spoolDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read camera spool: %w", err)
	}

	var cameras []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cameras = append(cameras, Info{
			ID:     entry.Name(),
			Facing: facingFromID(entry.Name()),
		})
	}
	return cameras, nil
}

func (d *SpoolDevice) Open(ctx context.Context, cameraID string) error {
	dir := filepath.Join(d.spoolDir, cameraID)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("camera %s is not available: %w", cameraID, domain.ErrNotReady)
	}
	if err := os.MkdirAll(filepath.Join(dir, "taken"), 0o755); err != nil {
		return err
	}

	d.mu.Lock()
	d.currentID = cameraID
	d.mu.Unlock()
	return nil
}

func (d *SpoolDevice) Close() error {
	d.mu.Lock()
	d.currentID = ""
	d.torchOn = false
	d.mu.Unlock()
	return nil
}

func (d *SpoolDevice) Ready() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentID != ""
}

// Capture waits for a frame to appear in the open camera's spool and claims
// it. It polls rather than watches; frame cadence is human-scale.
func (d *SpoolDevice) Capture(ctx context.Context) (*Photo, error) {
	d.mu.Lock()
	cameraID := d.currentID
	d.mu.Unlock()
	if cameraID == "" {
		return nil, domain.ErrNotReady
	}

	dir := filepath.Join(d.spoolDir, cameraID)
	deadline := time.Now().Add(d.captureTimeout)
	for {
		frame, err := newestFrame(dir)
		if err != nil {
			return nil, err
		}
		if frame != "" {
			return d.claimFrame(dir, frame)
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("no frame arrived within %s: %w", d.captureTimeout, domain.ErrNotReady)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func (d *SpoolDevice) claimFrame(dir, frame string) (*Photo, error) {
	src := filepath.Join(dir, frame)
	dst := filepath.Join(dir, "taken", frame)
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("failed to claim frame: %w", err)
	}

	width, height := frameDimensions(dst)
	return &Photo{URI: dst, Width: width, Height: height}, nil
}

func (d *SpoolDevice) SwitchFacing(ctx context.Context) error {
	d.mu.Lock()
	currentID := d.currentID
	d.mu.Unlock()
	if currentID == "" {
		return domain.ErrNotReady
	}

	cameras, err := d.ListCameras(ctx)
	if err != nil {
		return err
	}

	current := facingFromID(currentID)
	for _, cam := range cameras {
		if cam.ID != currentID && cam.Facing != current {
			return d.Open(ctx, cam.ID)
		}
	}
	return fmt.Errorf("no camera with a different facing is available")
}

// SetTorch records the torch state in a control file the capture daemon reads.
func (d *SpoolDevice) SetTorch(ctx context.Context, enabled bool) error {
	d.mu.Lock()
	cameraID := d.currentID
	d.mu.Unlock()
	if cameraID == "" {
		return domain.ErrNotReady
	}

	value := "off"
	if enabled {
		value = "on"
	}
	path := filepath.Join(d.spoolDir, cameraID, ".torch")
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return err
	}

	d.mu.Lock()
	d.torchOn = enabled
	d.mu.Unlock()
	return nil
}

func facingFromID(id string) Facing {
	switch {
	case strings.HasPrefix(id, "front"):
		return FacingFront
	case strings.HasPrefix(id, "back"):
		return FacingBack
	default:
		return FacingExternal
	}
}

// newestFrame returns the most recently modified image file in dir, or ""
// when the spool is empty.
func newestFrame(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var frames []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		frames = append(frames, entry)
	}
	if len(frames) == 0 {
		return "", nil
	}

	sort.Slice(frames, func(i, j int) bool {
		fi, _ := frames[i].Info()
		fj, _ := frames[j].Info()
		if fi == nil || fj == nil {
			return false
		}
		return fi.ModTime().After(fj.ModTime())
	})
	return frames[0].Name(), nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

func frameDimensions(path string) (int, int) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
