package route

import (
	"github.com/gofiber/fiber/v2"

	"alwantayf_backend/internals/configs"
	"alwantayf_backend/internals/features/uploads/controller"
	"alwantayf_backend/internals/helpers/storage"
	authMiddleware "alwantayf_backend/internals/middlewares/auth"
)

func UploadRoutes(app *fiber.App) {
	ctrl := controller.NewUploadController(storage.NewSupabaseStorage(), configs.MaxUploadBytes())

	app.Post("/api/upload", authMiddleware.AuthMiddleware(), ctrl.Upload)
}
