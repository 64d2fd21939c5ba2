package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"alwantayf_backend/internals/features/news/dto"
	"alwantayf_backend/internals/features/news/model"
	helper "alwantayf_backend/internals/helpers"
)

var validateNews = validator.New()

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

// =============================
// 📄 Get all news
// =============================
// Public: the homepage asks for ?published=true&limit=3, the dashboard
// for everything.
func (ctrl *NewsController) GetAllNews(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{}).Order("created_at DESC")

	if c.Query("published") == "true" {
		q = q.Where("published = ?", true)
	}
	if limit := c.QueryInt("limit"); limit > 0 {
		q = q.Limit(limit)
	}

	var news []model.NewsModel
	if err := q.Find(&news).Error; err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to retrieve news", err.Error())
	}

	return c.JSON(fiber.Map{"news": news})
}

// =============================
// 🔍 Get news by ID
// =============================
func (ctrl *NewsController) GetNewsByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var news model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&news, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "News not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to retrieve news", err.Error())
	}

	return c.JSON(fiber.Map{"news": news})
}

// =============================
// ➕ Create news (dashboard)
// =============================
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	var body dto.CreateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	news := model.NewsModel{
		TitleAr:   body.TitleAr,
		TitleEn:   body.TitleEn,
		ContentAr: body.ContentAr,
		ContentEn: body.ContentEn,
		Images:    pq.StringArray(body.Images),
		Published: body.Published,
	}
	if news.Images == nil {
		news.Images = pq.StringArray{}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&news).Error; err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to create news", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"news": news})
}

// =============================
// 🔄 Update news (dashboard)
// =============================
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var news model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&news, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "News not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to retrieve news", err.Error())
	}

	news.TitleAr = body.TitleAr
	news.TitleEn = body.TitleEn
	news.ContentAr = body.ContentAr
	news.ContentEn = body.ContentEn
	news.Images = pq.StringArray(body.Images)
	news.Published = body.Published
	news.UpdatedAt = time.Now()

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&news).Error; err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to update news", err.Error())
	}

	return c.JSON(fiber.Map{"news": news})
}

// =============================
// 🗑️ Delete news (dashboard)
// =============================
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.NewsModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to delete news", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "News not found")
	}

	return c.JSON(fiber.Map{"message": "News deleted successfully"})
}
