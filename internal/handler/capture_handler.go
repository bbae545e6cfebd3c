package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sigmaSd/AlbumCam/internal/config"
	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/middleware"
	"github.com/sigmaSd/AlbumCam/internal/service"
)

const maxSharedFileSize = 50 * 1024 * 1024

type CaptureHandler struct {
	captureService service.CaptureService
	cfg            *config.Config
}

func NewCaptureHandler(captureService service.CaptureService, cfg *config.Config) *CaptureHandler {
	return &CaptureHandler{
		captureService: captureService,
		cfg:            cfg,
	}
}

func (h *CaptureHandler) Capture(c *fiber.Ctx) error {
	result, err := h.captureService.Capture(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Share receives images handed in from an external share action as multipart
// files and files them into the selected location.
func (h *CaptureHandler) Share(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return middleware.BadRequest("Multipart form is required")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return middleware.BadRequest("No images to save")
	}

	var images []domain.SharedImage
	var received []string
	defer func() {
		for _, path := range received {
			os.Remove(path)
		}
	}()

	for _, file := range files {
		if file.Size > maxSharedFileSize {
			continue
		}

		dest := filepath.Join(h.cfg.StagingDir, fmt.Sprintf("incoming_%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
		if err := c.SaveFile(file, dest); err != nil {
			continue
		}
		received = append(received, dest)

		mimeType := file.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "image/*"
		}
		images = append(images, domain.SharedImage{
			URI:      dest,
			Name:     filepath.Base(file.Filename),
			MimeType: mimeType,
		})
	}

	result, err := h.captureService.ReceiveShared(c.Context(), images)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
