package handlers

import (
	"log"

	"pawmarket/internal/middleware"
	"pawmarket/internal/models"
	"pawmarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LocationHandler handles HTTP requests for trainer locations.
type LocationHandler struct {
	locationService *services.LocationService
	validate        *validator.Validate
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the trainer location routes with the Fiber app.
// Reads are public; writes require a bearer token and go through the role
// and ownership checks in the service.
func (h *LocationHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	locations := router.Group("/trainer/locations")
	locations.Get("/", h.HandleList)
	locations.Post("/", requireAuth, h.HandleCreate)
	locations.Get("/:id", h.HandleGet)
	locations.Put("/:id", requireAuth, h.HandleUpdate)
	locations.Delete("/:id", requireAuth, h.HandleDelete)
}

// CreateLocationRequest represents the request body for listing a location.
type CreateLocationRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Address   string  `json:"address"`
}

// HandleList returns all trainer locations.
func (h *LocationHandler) HandleList(c *fiber.Ctx) error {
	locations, err := h.locationService.ListLocations()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(locations)
}

// HandleGet returns a single trainer location by its ID.
func (h *LocationHandler) HandleGet(c *fiber.Ctx) error {
	location, err := h.locationService.GetLocation(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(location)
}

// HandleCreate lists a new trainer location owned by the caller.
func (h *LocationHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create location request body: %v", err)
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	location := models.TrainerLocation{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}

	caller := middleware.UserFromContext(c)
	if err := h.locationService.CreateLocation(caller, &location); err != nil {
		log.Printf("Error creating location %s: %v", req.Name, err)
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(location)
}

// HandleUpdate applies a partial update to a location owned by the caller.
func (h *LocationHandler) HandleUpdate(c *fiber.Ctx) error {
	var patch models.LocationPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing location patch request body: %v", err)
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}

	caller := middleware.UserFromContext(c)
	location, err := h.locationService.UpdateLocation(caller, c.Params("id"), patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(location)
}

// HandleDelete removes a location owned by the caller and returns the
// deleted representation.
func (h *LocationHandler) HandleDelete(c *fiber.Ctx) error {
	caller := middleware.UserFromContext(c)
	location, err := h.locationService.DeleteLocation(caller, c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(location)
}
