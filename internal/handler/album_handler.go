package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigmaSd/AlbumCam/internal/library"
	"github.com/sigmaSd/AlbumCam/internal/middleware"
)

type AlbumHandler struct {
	library library.Library
}

func NewAlbumHandler(lib library.Library) *AlbumHandler {
	return &AlbumHandler{library: lib}
}

func (h *AlbumHandler) List(c *fiber.Ctx) error {
	albums, err := h.library.ListAlbums(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"albums": albums})
}

func (h *AlbumHandler) Delete(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return middleware.BadRequest("Album name is required")
	}

	deleted, err := h.library.DeleteAlbum(c.Context(), name)
	if err != nil {
		return err
	}
	if !deleted {
		return middleware.NotFound("Album not found")
	}
	return c.Status(fiber.StatusNoContent).SendString("")
}
