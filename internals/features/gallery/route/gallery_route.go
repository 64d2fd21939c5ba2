package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alwantayf_backend/internals/features/gallery/controller"
	"alwantayf_backend/internals/helpers/storage"
	authMiddleware "alwantayf_backend/internals/middlewares/auth"
)

// GalleryRoutes: reads public, mutations dashboard-only.
func GalleryRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewGalleryController(db, storage.NewSupabaseStorage())

	app.Get("/api/gallery", ctrl.GetAllGallery)
	app.Get("/api/gallery/:id", ctrl.GetGalleryByID)

	admin := app.Group("/api/gallery", authMiddleware.AuthMiddleware())
	admin.Post("/", ctrl.CreateGallery)
	admin.Put("/:id", ctrl.UpdateGallery)
	admin.Delete("/:id", ctrl.DeleteGallery)
}
