package details

import (
	newsRoute "alwantayf_backend/internals/features/news/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NewsRoutes(app *fiber.App, db *gorm.DB) {

	newsRoute.NewsRoutes(app, db)

}
