package repositories

import (
	"errors"
	"fmt"

	"pawmarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMDogRepository is a GORM implementation of DogRepository.
type GORMDogRepository struct {
	db *gorm.DB
}

// NewGORMDogRepository creates a new instance of GORMDogRepository.
func NewGORMDogRepository(db *gorm.DB) *GORMDogRepository {
	return &GORMDogRepository{
		db: db,
	}
}

// GetAll retrieves all dogs from the database.
func (r *GORMDogRepository) GetAll() ([]models.Dog, error) {
	var dogs []models.Dog
	if err := r.db.Find(&dogs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all dogs: %w", err)
	}
	return dogs, nil
}

// GetByID retrieves a single dog by its ID from the database.
func (r *GORMDogRepository) GetByID(id string) (*models.Dog, error) {
	var dog models.Dog
	if err := r.db.First(&dog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrDogNotFound
		}
		return nil, fmt.Errorf("failed to get dog by ID %s: %w", id, err)
	}
	return &dog, nil
}

// GetByOwner retrieves all dogs owned by the given user.
func (r *GORMDogRepository) GetByOwner(ownerID string) ([]models.Dog, error) {
	var dogs []models.Dog
	if err := r.db.Find(&dogs, "owner_id = ?", ownerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get dogs for owner %s: %w", ownerID, err)
	}
	return dogs, nil
}

// Create creates a new dog in the database.
func (r *GORMDogRepository) Create(dog *models.Dog) error {
	if dog.ID == "" {
		dog.ID = uuid.New().String()
	}
	if err := r.db.Create(dog).Error; err != nil {
		return fmt.Errorf("failed to create dog: %w", err)
	}
	return nil
}

// Update updates an existing dog in the database.
func (r *GORMDogRepository) Update(dog *models.Dog) error {
	// Select("*") makes Save write all fields, including zero values, and
	// keeps it from falling back to an insert when no row matches.
	res := r.db.Select("*").Save(dog)
	if res.Error != nil {
		return fmt.Errorf("failed to update dog: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrDogNotFound
	}
	return nil
}

// Delete deletes a dog by its ID from the database.
func (r *GORMDogRepository) Delete(id string) error {
	res := r.db.Delete(&models.Dog{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete dog: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrDogNotFound
	}
	return nil
}
