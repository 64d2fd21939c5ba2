package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alwantayf_backend/internals/configs"
	"alwantayf_backend/internals/features/admissions/controller"
	"alwantayf_backend/internals/features/admissions/service"
	"alwantayf_backend/internals/helpers/storage"
	"alwantayf_backend/internals/middlewares"
	authMiddleware "alwantayf_backend/internals/middlewares/auth"
)

// AdmissionRoutes: the submission endpoint is public (the admission form
// posts without a session); everything the dashboard reviewer touches is
// behind the auth gate.
func AdmissionRoutes(app *fiber.App, db *gorm.DB) {
	repo := service.NewAdmissionRepository(db)
	svc := service.NewAdmissionService(repo, storage.NewSupabaseStorage(), configs.MaxUploadBytes())
	ctrl := controller.NewAdmissionController(svc)

	app.Post("/api/admissions", middlewares.SubmissionRateLimiter(), ctrl.Submit)

	review := app.Group("/api/admissions", authMiddleware.AuthMiddleware())
	review.Get("/", ctrl.List)
	review.Get("/:id", ctrl.GetByID)
	review.Patch("/:id", ctrl.UpdateStatus)
	review.Delete("/:id", ctrl.Delete)
}
