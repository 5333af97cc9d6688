package handlers

import (
	"log"

	"pawmarket/internal/models"
	"pawmarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DogHandler handles HTTP requests for dog profiles.
type DogHandler struct {
	dogService *services.DogService
	validate   *validator.Validate
}

// NewDogHandler creates a new DogHandler.
func NewDogHandler(dogService *services.DogService) *DogHandler {
	return &DogHandler{
		dogService: dogService,
		validate:   validator.New(),
	}
}

// RegisterRoutes registers the dog routes with the Fiber app. None of them
// require authentication; only the owner's existence is checked at create.
func (h *DogHandler) RegisterRoutes(router fiber.Router) {
	dogs := router.Group("/dogs")
	dogs.Post("/", h.HandleRegisterDog)
	dogs.Get("/", h.HandleListDogs)
	dogs.Get("/user/:user_id", h.HandleListByOwner)
	dogs.Get("/:dog_id", h.HandleGetDog)
	dogs.Patch("/:dog_id", h.HandleUpdateDog)
	dogs.Delete("/:dog_id", h.HandleDeleteDog)
}

// RegisterDogRequest represents the request body for dog registration.
type RegisterDogRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Breed   string `json:"breed" validate:"required,min=1,max=100"`
	Age     string `json:"age"`
	OwnerID string `json:"owner_id" validate:"required,uuid"`
}

// HandleRegisterDog creates a new dog profile for an existing owner.
func (h *DogHandler) HandleRegisterDog(c *fiber.Ctx) error {
	var req RegisterDogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register dog request body: %v", err)
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	dog := models.Dog{
		Name:    req.Name,
		Breed:   req.Breed,
		Age:     req.Age,
		OwnerID: req.OwnerID,
	}

	if err := h.dogService.RegisterDog(&dog); err != nil {
		log.Printf("Error registering dog %s: %v", req.Name, err)
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dog)
}

// HandleListDogs returns all dog profiles.
func (h *DogHandler) HandleListDogs(c *fiber.Ctx) error {
	dogs, err := h.dogService.ListDogs()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dogs)
}

// HandleGetDog returns a single dog by its ID.
func (h *DogHandler) HandleGetDog(c *fiber.Ctx) error {
	dog, err := h.dogService.GetDog(c.Params("dog_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dog)
}

// HandleListByOwner returns all dogs owned by the given user.
func (h *DogHandler) HandleListByOwner(c *fiber.Ctx) error {
	dogs, err := h.dogService.ListDogsByOwner(c.Params("user_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dogs)
}

// HandleUpdateDog applies a partial update; fields absent from the body are
// left untouched.
func (h *DogHandler) HandleUpdateDog(c *fiber.Ctx) error {
	var patch models.DogPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing dog patch request body: %v", err)
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}

	dog, err := h.dogService.UpdateDog(c.Params("dog_id"), patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dog)
}

// HandleDeleteDog deletes a dog by its ID and returns the deleted
// representation.
func (h *DogHandler) HandleDeleteDog(c *fiber.Ctx) error {
	dog, err := h.dogService.DeleteDog(c.Params("dog_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dog)
}
