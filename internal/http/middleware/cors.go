package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"huntapi/internal/config"
)

// CORS allows cross-origin GET requests from the configured origins only.
// Credentials are never allowed.
func CORS(cfg config.CORSConfig) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ","),
		AllowMethods:     fiber.MethodGet,
		AllowHeaders:     "Origin, Content-Type, Accept, " + RequestIDHeader,
		ExposeHeaders:    RequestIDHeader,
		AllowCredentials: false,
	})
}
