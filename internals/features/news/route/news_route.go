package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alwantayf_backend/internals/features/news/controller"
	authMiddleware "alwantayf_backend/internals/middlewares/auth"
)

// NewsRoutes: reads are public (the site renders published posts),
// mutations are dashboard-only.
func NewsRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	app.Get("/api/news", ctrl.GetAllNews)
	app.Get("/api/news/:id", ctrl.GetNewsByID)

	admin := app.Group("/api/news", authMiddleware.AuthMiddleware())
	admin.Post("/", ctrl.CreateNews)
	admin.Put("/:id", ctrl.UpdateNews)
	admin.Delete("/:id", ctrl.DeleteNews)
}
