package controller

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alwantayf_backend/internals/features/admissions/dto"
	"alwantayf_backend/internals/features/admissions/model"
	"alwantayf_backend/internals/features/admissions/service"
	helper "alwantayf_backend/internals/helpers"
)

var validateAdmission = validator.New()

// AdmissionService is the subset of *service.AdmissionService the handlers
// use; an interface so handler tests can stub it.
type AdmissionService interface {
	Submit(ctx context.Context, req dto.CreateAdmissionRequest, files []service.FileInput) (*model.AdmissionModel, []service.FileResult, error)
	List(ctx context.Context, status, search string) ([]model.AdmissionModel, error)
	Get(ctx context.Context, id string) (*model.AdmissionModel, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.AdmissionModel, error)
	Delete(ctx context.Context, id string) error
}

type AdmissionController struct {
	Service AdmissionService
}

func NewAdmissionController(svc AdmissionService) *AdmissionController {
	return &AdmissionController{Service: svc}
}

// =============================
// ➕ Submit application (public form)
// =============================
func (ctrl *AdmissionController) Submit(c *fiber.Ctx) error {
	var req dto.CreateAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid form data", err.Error())
	}
	if err := validateAdmission.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	files := collectFiles(c)

	created, _, err := ctrl.Service.Submit(c.UserContext(), req, files)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to submit application", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Application submitted successfully",
		"data":    created,
	})
}

// collectFiles pulls the recognized document fields off the multipart
// form. An unreadable part is treated like a failed upload: logged and
// dropped, never fatal to the submission.
func collectFiles(c *fiber.Ctx) []service.FileInput {
	var files []service.FileInput
	for _, field := range dto.FileFields {
		fh, err := c.FormFile(field)
		if err != nil || fh == nil || fh.Size == 0 {
			continue
		}
		data, err := readFile(fh)
		if err != nil {
			log.Printf("[WARN] reading %s failed: %v", field, err)
			continue
		}
		files = append(files, service.FileInput{
			Field:       field,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// =============================
// 📄 List applications (dashboard)
// =============================
func (ctrl *AdmissionController) List(c *fiber.Ctx) error {
	status := c.Query("status")
	search := c.Query("search")

	admissions, err := ctrl.Service.List(c.UserContext(), status, search)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to fetch applications", err.Error())
	}

	return c.JSON(fiber.Map{"admissions": admissions})
}

// =============================
// 🔍 Get one application
// =============================
func (ctrl *AdmissionController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	admission, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrAdmissionNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Application not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to fetch application", err.Error())
	}

	return c.JSON(fiber.Map{"admission": admission})
}

// =============================
// 🔄 Update status (reviewer action)
// =============================
func (ctrl *AdmissionController) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validateAdmission.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := ctrl.Service.UpdateStatus(c.UserContext(), id, body.Status)
	if err != nil {
		if errors.Is(err, service.ErrAdmissionNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Application not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to update application", err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Application updated successfully",
		"data":    updated,
	})
}

// =============================
// 🗑️ Delete application (administrative)
// =============================
func (ctrl *AdmissionController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrAdmissionNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Application not found", err.Error())
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Failed to delete application", err.Error())
	}

	return c.JSON(fiber.Map{"message": "Application deleted successfully"})
}
