package middleware

import (
	"errors"
	"log"

	"pawmarket/internal/models"
	"pawmarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the Locals key under which the authenticated user is stored.
const UserKey = "user"

// AuthRequired is a Fiber middleware that resolves the bearer token to a
// user. Every failure mode answers 401, with a distinct detail message per
// kind; a missing header additionally carries a WWW-Authenticate challenge.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.AuthenticateHeader(c.Get("Authorization"))
		if err != nil {
			log.Printf("Bearer authentication failed: %v", err)
			if errors.Is(err, models.ErrMissingAuthorization) {
				c.Set("WWW-Authenticate", "Bearer")
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": err.Error(),
			})
		}

		// Store the user in the Fiber context for subsequent handlers.
		c.Locals(UserKey, user)

		return c.Next()
	}
}

// UserFromContext returns the user stored by AuthRequired, or nil when the
// route was not guarded.
func UserFromContext(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
