package middleware

import "github.com/gofiber/fiber/v2"

const AllowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORS opens every route to any origin. Pre-flight requests are answered
// here with an empty 200 and never reach a handler.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowHeaders, AllowedHeaders)
		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}
