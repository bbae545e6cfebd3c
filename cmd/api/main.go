package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/sigmaSd/AlbumCam/internal/camera"
	"github.com/sigmaSd/AlbumCam/internal/config"
	"github.com/sigmaSd/AlbumCam/internal/handler"
	"github.com/sigmaSd/AlbumCam/internal/library"
	"github.com/sigmaSd/AlbumCam/internal/middleware"
	"github.com/sigmaSd/AlbumCam/internal/repository"
	"github.com/sigmaSd/AlbumCam/internal/service"
	"github.com/sigmaSd/AlbumCam/internal/settings"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	repos := repository.NewRepositories(db)
	lib := library.NewService(repos.Asset, repos.Album, minioClient, cfg)
	store := settings.NewStore(settings.NewRedisKV(redisClient))

	device := camera.NewSpoolDevice(cfg.CameraSpoolDir, cfg.CaptureTimeout)
	defer device.Close()
	openDefaultCamera(device)

	services := service.NewServices(device, lib, store, cfg)
	if err := services.Registry.Load(context.Background()); err != nil {
		log.Printf("Warning: Failed to load saved locations: %v", err)
	}

	handlers := handler.NewHandlers(services, device, lib, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openDefaultCamera prefers the back camera, matching what the shutter screen
// shows first. Capture stays unavailable until a camera opens.
func openDefaultCamera(device *camera.SpoolDevice) {
	ctx := context.Background()

	cameras, err := device.ListCameras(ctx)
	if err != nil || len(cameras) == 0 {
		log.Printf("Warning: no cameras available yet: %v", err)
		return
	}

	selected := cameras[0]
	for _, cam := range cameras {
		if cam.Facing == camera.FacingBack {
			selected = cam
			break
		}
	}

	if err := device.Open(ctx, selected.ID); err != nil {
		log.Printf("Warning: failed to open camera %s: %v", selected.ID, err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	locations := v1.Group("/locations")
	locations.Get("/", h.Location.List)
	locations.Post("/", h.Location.Create)
	locations.Post("/import", h.Location.Import)
	locations.Post("/select-next", h.Location.SelectNext)
	locations.Post("/select-previous", h.Location.SelectPrevious)
	locations.Get("/selected/photo-count", h.Location.PhotoCount)
	locations.Put("/:id/select", h.Location.Select)
	locations.Delete("/:id", h.Location.Delete)

	v1.Post("/capture", h.Capture.Capture)
	v1.Post("/share", h.Capture.Share)

	albums := v1.Group("/albums")
	albums.Get("/", h.Album.List)
	albums.Delete("/:name", h.Album.Delete)

	settingsGroup := v1.Group("/settings")
	settingsGroup.Get("/", h.Settings.Get)
	settingsGroup.Put("/haptics", h.Settings.UpdateHaptics)

	cameraGroup := v1.Group("/camera")
	cameraGroup.Get("/cameras", h.Camera.ListCameras)
	cameraGroup.Get("/permission", h.Camera.GetPermission)
	cameraGroup.Post("/permission", h.Camera.RequestPermission)
	cameraGroup.Post("/open", h.Camera.Open)
	cameraGroup.Post("/close", h.Camera.Close)
	cameraGroup.Post("/switch-facing", h.Camera.SwitchFacing)
	cameraGroup.Post("/torch", h.Camera.SetTorch)
}
