package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigmaSd/AlbumCam/internal/camera"
	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/middleware"
)

type CameraHandler struct {
	device camera.Device
}

func NewCameraHandler(device camera.Device) *CameraHandler {
	return &CameraHandler{device: device}
}

type openCameraRequest struct {
	CameraID string `json:"camera_id"`
}

type torchRequest struct {
	Enabled *bool `json:"enabled"`
}

func (h *CameraHandler) ListCameras(c *fiber.Ctx) error {
	cameras, err := h.device.ListCameras(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"cameras": cameras})
}

func (h *CameraHandler) GetPermission(c *fiber.Ctx) error {
	granted, err := h.device.CheckPermission(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"granted": granted})
}

// RequestPermission runs the one-time re-request flow. A denial here is
// terminal for the caller.
func (h *CameraHandler) RequestPermission(c *fiber.Ctx) error {
	granted, err := h.device.RequestPermission(c.Context())
	if err != nil {
		return err
	}
	if !granted {
		return domain.ErrPermissionDenied
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"granted": true})
}

func (h *CameraHandler) Open(c *fiber.Ctx) error {
	var req openCameraRequest
	if err := c.BodyParser(&req); err != nil || req.CameraID == "" {
		return middleware.BadRequest("Field 'camera_id' is required")
	}

	if err := h.device.Open(c.Context(), req.CameraID); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"open": true})
}

func (h *CameraHandler) Close(c *fiber.Ctx) error {
	if err := h.device.Close(); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"open": false})
}

func (h *CameraHandler) SwitchFacing(c *fiber.Ctx) error {
	if err := h.device.SwitchFacing(c.Context()); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"switched": true})
}

func (h *CameraHandler) SetTorch(c *fiber.Ctx) error {
	var req torchRequest
	if err := c.BodyParser(&req); err != nil || req.Enabled == nil {
		return middleware.BadRequest("Field 'enabled' is required")
	}

	if err := h.device.SetTorch(c.Context(), *req.Enabled); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"torch": *req.Enabled})
}
