package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alwantayf_backend/internals/features/gallery/dto"
	"alwantayf_backend/internals/features/gallery/model"
	helper "alwantayf_backend/internals/helpers"
	"alwantayf_backend/internals/helpers/storage"
)

var validateGallery = validator.New()

type GalleryController struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewGalleryController(db *gorm.DB, uploader storage.Uploader) *GalleryController {
	return &GalleryController{DB: db, Uploader: uploader}
}

// =============================
// 📄 Get all gallery items
// =============================
func (ctrl *GalleryController) GetAllGallery(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.GalleryModel{}).Order("created_at DESC")

	if c.Query("published") == "true" {
		q = q.Where("published = ?", true)
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	var items []model.GalleryModel
	if err := q.Find(&items).Error; err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to retrieve gallery", err.Error())
	}

	return c.JSON(fiber.Map{"gallery": items})
}

// =============================
// 🔍 Get gallery item by ID
// =============================
func (ctrl *GalleryController) GetGalleryByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.GalleryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Gallery item not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to retrieve gallery item", err.Error())
	}

	return c.JSON(fiber.Map{"gallery": item})
}

// =============================
// ➕ Create gallery item (dashboard)
// =============================
func (ctrl *GalleryController) CreateGallery(c *fiber.Ctx) error {
	var body dto.CreateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	published := true
	if body.Published != nil {
		published = *body.Published
	}

	item := model.GalleryModel{
		Type:         body.Type,
		URL:          body.URL,
		ThumbnailURL: body.ThumbnailURL,
		Published:    published,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to create gallery item", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"gallery": item})
}

// =============================
// 🔄 Update gallery item (dashboard)
// =============================
func (ctrl *GalleryController) UpdateGallery(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.GalleryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Gallery item not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to retrieve gallery item", err.Error())
	}

	item.Type = body.Type
	item.URL = body.URL
	item.ThumbnailURL = body.ThumbnailURL
	item.Published = body.Published
	item.UpdatedAt = time.Now()

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&item).Error; err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to update gallery item", err.Error())
	}

	return c.JSON(fiber.Map{"gallery": item})
}

// =============================
// 🗑️ Delete gallery item (dashboard)
// =============================
// The stored object is removed best-effort after the row: an orphaned file
// is better than a dangling row pointing at nothing.
func (ctrl *GalleryController) DeleteGallery(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.GalleryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Gallery item not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to retrieve gallery item", err.Error())
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&item).Error; err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to delete gallery item", err.Error())
	}

	for _, href := range []string{item.URL, deref(item.ThumbnailURL)} {
		bucket, key, ok := storage.ParsePublicURL(href)
		if !ok {
			continue
		}
		if err := ctrl.Uploader.Delete(c.UserContext(), bucket, key); err != nil {
			log.Printf("[WARN] gallery %s: removing object %s/%s failed: %v", id, bucket, key, err)
		}
	}

	return c.JSON(fiber.Map{"message": "Gallery item deleted successfully"})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
