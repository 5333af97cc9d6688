package handlers

import (
	"errors"
	"fmt"
	"log"

	"pawmarket/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// detail writes the uniform error body used by every endpoint.
func detail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"detail": message,
	})
}

// serviceError maps a service error to its HTTP status. Anything outside
// the known taxonomy surfaces as an opaque 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrDogNotFound),
		errors.Is(err, models.ErrLocationNotFound):
		return detail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrUsernameTaken):
		return detail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		return detail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrTrainerRoleRequired),
		errors.Is(err, models.ErrNotOwner):
		return detail(c, fiber.StatusForbidden, err.Error())
	default:
		log.Printf("Unhandled service error: %v", err)
		return detail(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// validationError renders validator failures as a 422 with per-field tags.
func validationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "validation failed",
			"errors": errorMessages,
		})
	}
	return detail(c, fiber.StatusUnprocessableEntity, "validation failed")
}
