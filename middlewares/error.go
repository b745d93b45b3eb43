package middlewares

import (
	"errors"
	"log"

	"facturador-backend/invoice"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler centralizes error responses and keeps messages sanitized.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Fiber errors (use their status code + message)
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	// 2) Per-field line-item validation (422, all violations together)
	var ive *invoice.ValidationError
	if errors.As(err, &ive) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  ive.Fields,
		})
	}

	// 3) DTO validation errors (422 + per-field info)
	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make(map[string]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  out,
		})
	}

	// 4) Invoice core errors
	var uce *invoice.UnknownCurrencyError
	switch {
	case errors.As(err, &uce):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": uce.Error()})
	case errors.Is(err, invoice.ErrIndexOutOfRange):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "invoice not found"})
	case errors.Is(err, invoice.ErrHashUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "fingerprint unavailable, invoice not finalized",
		})
	}

	// 5) Unknown errors (500)
	log.Printf("internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}
