package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/artem13815/pcbuild/api/http/handlers"
	"github.com/artem13815/pcbuild/api/http/middleware"
	"github.com/artem13815/pcbuild/api/http/presenter"
)

// NewApp builds the Fiber app with middleware and all routes registered.
func NewApp(log *zap.Logger, health *handlers.HealthHandler, recommend *handlers.RecommendHandler, builds *handlers.BuildsHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "pcbuild",
		ErrorHandler: errorHandler(log),
	})
	app.Use(recover.New())
	app.Use(middleware.CORS())
	app.Use(middleware.AccessLog(log))

	Register(app, health, recommend, builds)
	return app
}

// errorHandler keeps the {"error": ...} envelope for errors escaping handlers.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		} else {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return presenter.Error(c, code, msg)
	}
}
