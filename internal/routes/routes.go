package routes

import (
	"time"

	"github.com/fidias-dev/technician-agenda/internal/config"
	"github.com/fidias-dev/technician-agenda/internal/handlers"
	"github.com/fidias-dev/technician-agenda/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	clientHandler *handlers.ClientHandler,
	directionHandler *handlers.DirectionHandler,
	technicianHandler *handlers.TechnicianHandler,
	workHandler *handlers.WorkHandler,
	fileHandler *handlers.FileHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and static lookups need no token
	api.Get("/health", healthHandler.Check)
	api.Get("/regions", catalogHandler.Regions)
	api.Get("/regions/:regionId/comunas", catalogHandler.Comunas)
	api.Get("/jobcategories", catalogHandler.JobCategories)
	api.Get("/jobcategories/:categoryId/subcategories", catalogHandler.Subcategories)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Everything below is scoped to the authenticated owner
	protected := api.Group("", middleware.JWTProtected(cfg))

	clients := protected.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Patch("/:id/restore", clientHandler.Restore)
	clients.Get("/:clientId/directions", directionHandler.ListForClient)

	protected.Post("/directions", directionHandler.Create)

	technicians := protected.Group("/technicians")
	technicians.Get("/", technicianHandler.List)
	// registered before /:id so "summary" is not parsed as an id
	technicians.Get("/summary", technicianHandler.Summary)
	technicians.Post("/", technicianHandler.Create)
	technicians.Get("/:id", technicianHandler.Get)
	technicians.Put("/:id", technicianHandler.Update)
	technicians.Delete("/:id", technicianHandler.Delete)

	works := protected.Group("/works")
	works.Get("/", workHandler.List)
	works.Post("/", workHandler.Create)
	works.Get("/:id", workHandler.Get)
	works.Put("/:id", workHandler.Update)
	works.Delete("/:id", workHandler.Delete)
	works.Patch("/:id/status", workHandler.SetCompleted)
	works.Patch("/:id/technician-payment", workHandler.SetTechnicianPaid)
	works.Post("/:id/files", fileHandler.Upload)
	works.Get("/:id/files", fileHandler.ListForWork)

	protected.Delete("/files/:id", fileHandler.Delete)
}
