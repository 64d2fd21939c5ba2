// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "alwantayf_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== CONTENT =====================
	log.Println("[INFO] Setting up NewsRoutes...")
	routeDetails.NewsRoutes(app, db)

	log.Println("[INFO] Setting up GalleryRoutes...")
	routeDetails.GalleryRoutes(app, db)

	// ===================== ADMISSIONS =====================
	log.Println("[INFO] Setting up AdmissionRoutes...")
	routeDetails.AdmissionRoutes(app, db)

	// ===================== UTILS =====================
	log.Println("[INFO] Setting up UtilsRoutes...")
	routeDetails.UtilsRoutes(app, db)
}
