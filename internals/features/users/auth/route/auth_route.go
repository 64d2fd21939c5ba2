package route

import (
	"github.com/gofiber/fiber/v2"

	"alwantayf_backend/internals/features/users/auth/controller"
	"alwantayf_backend/internals/features/users/auth/service"
	"alwantayf_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App) {
	ctrl := controller.NewAuthController(service.NewGoTrueClient())

	app.Post("/api/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
	app.Get("/api/auth/me", ctrl.Me)
	app.Post("/api/logout", ctrl.Logout)
}
