package handlers

import (
	"log"

	"pawmarket/internal/middleware"
	"pawmarket/internal/models"
	"pawmarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for accounts and sessions.
type UserHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. requireAuth
// guards the session-scoped endpoints.
func (h *UserHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	users := router.Group("/users")
	users.Post("/createaccount", h.HandleCreateAccount)
	users.Post("/login", h.HandleLogin)
	users.Get("/me", requireAuth, h.HandleMe)
	users.Delete("/me", requireAuth, h.HandleDeleteMe)
	users.Get("/profile/:username", h.HandleProfile)
}

// CreateAccountRequest represents the request body for account creation.
// Role defaults to client when omitted; any value other than client or
// trainer is rejected.
type CreateAccountRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=100"`
	Password       string `json:"password" validate:"required,min=6"`
	Role           string `json:"role" validate:"omitempty,oneof=client trainer"`
	Experience     string `json:"experience"`
	Specialties    string `json:"specialties"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profile_picture"`
}

// HandleCreateAccount handles new account registration. The freshly minted
// session token is part of the response; it is the only credential the
// client will ever get.
func (h *UserHandler) HandleCreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create account request body: %v", err)
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user := models.User{
		Username:       req.Username,
		Role:           models.Role(req.Role),
		Experience:     req.Experience,
		Specialties:    req.Specialties,
		Phone:          req.Phone,
		ProfilePicture: req.ProfilePicture,
	}

	if err := h.authService.CreateAccount(&user, req.Password); err != nil {
		log.Printf("Error creating account for %s: %v", req.Username, err)
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies the credentials and returns the stored user with its
// durable session token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("Login failed for user %s: %v", req.Username, err)
		return serviceError(c, err)
	}

	return c.JSON(user)
}

// HandleMe returns the authenticated user.
func (h *UserHandler) HandleMe(c *fiber.Ctx) error {
	return c.JSON(middleware.UserFromContext(c))
}

// HandleDeleteMe deletes the authenticated user's account, cascading to
// their dogs and trainer locations, and returns the deleted user.
func (h *UserHandler) HandleDeleteMe(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)

	deleted, err := h.authService.DeleteAccount(user.ID)
	if err != nil {
		log.Printf("Error deleting account %s: %v", user.ID, err)
		return serviceError(c, err)
	}

	return c.JSON(deleted)
}

// HandleProfile returns the public profile of a user: id and username only.
func (h *UserHandler) HandleProfile(c *fiber.Ctx) error {
	profile, err := h.authService.GetProfile(c.Params("username"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}
