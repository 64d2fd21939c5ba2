package details

import (
	uploadRoute "alwantayf_backend/internals/features/uploads/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UtilsRoutes(app *fiber.App, _ *gorm.DB) {

	uploadRoute.UploadRoutes(app)

}
