package details

import (
	galleryRoute "alwantayf_backend/internals/features/gallery/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GalleryRoutes(app *fiber.App, db *gorm.DB) {

	galleryRoute.GalleryRoutes(app, db)

}
