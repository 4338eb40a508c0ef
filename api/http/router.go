package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/pcbuild/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, recommend *handlers.RecommendHandler, builds *handlers.BuildsHandler) {
	// AI recommendation functions are served under /functions/v1 for existing clients
	fn := app.Group("/functions/v1")
	fn.Post("/generate-pc-build", recommend.GenerateBuild)
	fn.Post("/recommend-peripherals", recommend.RecommendPeripherals)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	b := v1.Group("/builds")
	b.Post("/compare", builds.Compare)
	b.Post("/", builds.Save)
	b.Get("/", builds.List)
	b.Get("/:id", builds.Get)

	v1.Get("/shared/:token", builds.Shared)
}
