package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Error envelope: {error}, the shape the dashboard and public form expect
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// ✅ Error with upstream detail: {error, details}
func ErrorWithDetails(c *fiber.Ctx, code int, message, details string) error {
	return c.Status(code).JSON(fiber.Map{
		"error":   message,
		"details": details,
	})
}

// ✅ Error with remediation hint (upstream-service failures): {error, details, hint}
func ErrorWithHint(c *fiber.Ctx, code int, message, details, hint string) error {
	return c.Status(code).JSON(fiber.Map{
		"error":   message,
		"details": details,
		"hint":    hint,
	})
}

// ✅ validator.v10 errors → 400 with per-field tags
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": errorsMap,
	})
}
