package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigmaSd/AlbumCam/internal/middleware"
	"github.com/sigmaSd/AlbumCam/internal/service"
)

type LocationHandler struct {
	registryService service.RegistryService
	captureService  service.CaptureService
}

func NewLocationHandler(registryService service.RegistryService, captureService service.CaptureService) *LocationHandler {
	return &LocationHandler{
		registryService: registryService,
		captureService:  captureService,
	}
}

type createLocationRequest struct {
	Name string `json:"name"`
}

type importLocationRequest struct {
	AlbumName string `json:"album_name"`
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, selectedID := h.registryService.List(c.Context())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"locations":            locations,
		"selected_location_id": selectedID,
	})
}

func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req createLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	location, err := h.registryService.Add(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func (h *LocationHandler) Import(c *fiber.Ctx) error {
	var req importLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	location, err := h.registryService.ImportFromAlbum(c.Context(), req.AlbumName)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	locationID := c.Params("id")
	if locationID == "" {
		return middleware.BadRequest("Location ID is required")
	}

	if err := h.registryService.Remove(c.Context(), locationID); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *LocationHandler) Select(c *fiber.Ctx) error {
	locationID := c.Params("id")
	if locationID == "" {
		return middleware.BadRequest("Location ID is required")
	}

	if err := h.registryService.Select(c.Context(), locationID); err != nil {
		return err
	}

	locations, selectedID := h.registryService.List(c.Context())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"locations":            locations,
		"selected_location_id": selectedID,
	})
}

func (h *LocationHandler) SelectNext(c *fiber.Ctx) error {
	location, err := h.registryService.SelectNext(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(location)
}

func (h *LocationHandler) SelectPrevious(c *fiber.Ctx) error {
	location, err := h.registryService.SelectPrevious(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(location)
}

func (h *LocationHandler) PhotoCount(c *fiber.Ctx) error {
	location, err := h.registryService.Selected(c.Context())
	if err != nil {
		return err
	}

	count := h.captureService.PhotoCount(c.Context(), *location)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"location":    location,
		"photo_count": count,
	})
}
