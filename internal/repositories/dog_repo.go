package repositories

import (
	"pawmarket/internal/models"
)

// DogRepository defines the interface for dog profile data access.
type DogRepository interface {
	GetAll() ([]models.Dog, error)
	GetByID(id string) (*models.Dog, error)
	GetByOwner(ownerID string) ([]models.Dog, error)
	Create(dog *models.Dog) error
	Update(dog *models.Dog) error
	Delete(id string) error
}
