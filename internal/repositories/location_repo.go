package repositories

import (
	"pawmarket/internal/models"
)

// LocationRepository defines the interface for trainer location data access.
type LocationRepository interface {
	GetAll() ([]models.TrainerLocation, error)
	GetByID(id string) (*models.TrainerLocation, error)
	Create(location *models.TrainerLocation) error
	Update(location *models.TrainerLocation) error
	Delete(id string) error
}
