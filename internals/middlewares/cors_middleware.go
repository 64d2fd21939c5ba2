// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"alwantayf_backend/internals/configs"
)

// CorsMiddleware allows the public site and the dashboard origins.
// Credentials are required because the session rides in httpOnly cookies.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ALLOW_ORIGINS", strings.Join([]string{
		"http://localhost:3000",
		"http://localhost:5173",
		"https://alwantayf.vercel.app",
		"https://alwantayf-school.com",
	}, ","))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowCredentials: true,
	})
}
