package main

import (
	"strings"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/auth"
	"kafe-backend/internal/config"
	"kafe-backend/internal/daily"
	"kafe-backend/internal/database"
	"kafe-backend/internal/menu"
	"kafe-backend/internal/schedule"
	"kafe-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: upload.MaxFileSize + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Error().Err(err).Msg("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Uploaded images are referenced by the /uploads/... paths the API returns
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Public reads: the infoscreen polls these without a session
	api.Get("/products", menu.ListProductsHandler())
	api.Get("/products/:id", menu.GetProductHandler())
	api.Get("/opening-hours", schedule.ListOpeningHoursHandler(logger))
	api.Get("/daily-content", daily.GetContentHandler())

	// Protected: everything the admin dashboard mutates
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	protected.Post("/products", menu.CreateProductHandler())
	protected.Put("/products/:id", menu.UpdateProductHandler())
	protected.Delete("/products/:id", menu.DeleteProductHandler(logger))

	protected.Post("/opening-hours", schedule.ResetOpeningHoursHandler(logger))
	protected.Put("/opening-hours/:id", schedule.UpdateOpeningHoursHandler(logger))

	protected.Post("/daily-content", daily.UpsertContentHandler())

	protected.Post("/upload", upload.FileHandler(cfg.UploadDir, logger))

	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	logger.Info().Str("port", cfg.HTTPPort).Msg("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
