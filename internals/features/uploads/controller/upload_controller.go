package controller

import (
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alwantayf_backend/internals/constants"
	helper "alwantayf_backend/internals/helpers"
	"alwantayf_backend/internals/helpers/images"
	"alwantayf_backend/internals/helpers/storage"
)

// compressThreshold: images above this size get recompressed to WebP
// before storage; anything smaller is not worth the CPU.
const compressThreshold = 2 * 1024 * 1024

type UploadController struct {
	Uploader storage.Uploader
	MaxSize  int64
}

func NewUploadController(uploader storage.Uploader, maxSize int64) *UploadController {
	return &UploadController{Uploader: uploader, MaxSize: maxSize}
}

// =============================
// 📤 Generic dashboard upload
// =============================
// Used by the news/gallery editors. The size cap is enforced before any
// storage call; the rejection message is localized (ar default).
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	lang := resolveLang(c)

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		msg := "لم يتم تقديم ملف"
		if lang == "en" {
			msg = "No file provided"
		}
		return helper.Error(c, fiber.StatusBadRequest, msg)
	}

	if err := storage.CheckSize(fh.Size, ctrl.MaxSize, lang); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Upload failed", err.Error())
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Upload failed", err.Error())
	}

	filename := fh.Filename
	contentType := fh.Header.Get("Content-Type")

	// large images get recompressed to WebP; keep the original bytes when compression fails
	if int64(len(data)) > compressThreshold && images.IsImage(data) {
		if webpData, err := images.CompressToWebP(data, images.DefaultWebPOptions()); err == nil {
			log.Printf("[INFO] recompressed %s: %d → %d bytes", filename, len(data), len(webpData))
			data = webpData
			contentType = "image/webp"
			filename = replaceExt(filename, ".webp")
		} else {
			log.Printf("[WARN] webp recompression of %s failed: %v", filename, err)
		}
	}

	objectPath := helper.GenerateObjectName(filename)
	url, err := ctrl.Uploader.UploadBytes(c.UserContext(), constants.NewsImagesBucket, objectPath, contentType, data)
	if err != nil {
		hint := "Run the storage setup SQL to create the bucket and policies"
		if lang == "ar" {
			hint = "قم بتشغيل SQL الخاص بالتخزين لإنشاء bucket والصلاحيات"
		}
		return helper.ErrorWithHint(c, fiber.StatusInternalServerError, "Upload failed", err.Error(), hint)
	}

	return c.JSON(fiber.Map{
		"url":  url,
		"size": len(data),
	})
}

func resolveLang(c *fiber.Ctx) string {
	if lang := c.FormValue("lang"); lang != "" {
		return lang
	}
	if strings.Contains(c.Get(fiber.HeaderAcceptLanguage), "en") {
		return "en"
	}
	return "ar"
}

func replaceExt(filename, ext string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return filename[:i] + ext
	}
	return filename + ext
}
