package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigmaSd/AlbumCam/internal/middleware"
	"github.com/sigmaSd/AlbumCam/internal/service"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

type updateHapticsRequest struct {
	Enabled *bool `json:"enabled"`
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"haptic_enabled": h.settingsService.HapticEnabled(c.Context()),
	})
}

func (h *SettingsHandler) UpdateHaptics(c *fiber.Ctx) error {
	var req updateHapticsRequest
	if err := c.BodyParser(&req); err != nil || req.Enabled == nil {
		return middleware.BadRequest("Field 'enabled' is required")
	}

	if err := h.settingsService.SetHapticEnabled(c.Context(), *req.Enabled); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"haptic_enabled": *req.Enabled,
	})
}
