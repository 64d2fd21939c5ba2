package details

import (
	admissionRoute "alwantayf_backend/internals/features/admissions/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdmissionRoutes(app *fiber.App, db *gorm.DB) {

	admissionRoute.AdmissionRoutes(app, db)

}
