package repositories

import (
	"errors"
	"fmt"

	"pawmarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMLocationRepository is a GORM implementation of LocationRepository.
type GORMLocationRepository struct {
	db *gorm.DB
}

// NewGORMLocationRepository creates a new instance of GORMLocationRepository.
func NewGORMLocationRepository(db *gorm.DB) *GORMLocationRepository {
	return &GORMLocationRepository{
		db: db,
	}
}

// GetAll retrieves all trainer locations from the database.
func (r *GORMLocationRepository) GetAll() ([]models.TrainerLocation, error) {
	var locations []models.TrainerLocation
	if err := r.db.Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all trainer locations: %w", err)
	}
	return locations, nil
}

// GetByID retrieves a single trainer location by its ID from the database.
func (r *GORMLocationRepository) GetByID(id string) (*models.TrainerLocation, error) {
	var location models.TrainerLocation
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get trainer location by ID %s: %w", id, err)
	}
	return &location, nil
}

// Create creates a new trainer location in the database.
func (r *GORMLocationRepository) Create(location *models.TrainerLocation) error {
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	if err := r.db.Create(location).Error; err != nil {
		return fmt.Errorf("failed to create trainer location: %w", err)
	}
	return nil
}

// Update updates an existing trainer location in the database.
func (r *GORMLocationRepository) Update(location *models.TrainerLocation) error {
	res := r.db.Select("*").Save(location)
	if res.Error != nil {
		return fmt.Errorf("failed to update trainer location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrLocationNotFound
	}
	return nil
}

// Delete deletes a trainer location by its ID from the database.
func (r *GORMLocationRepository) Delete(id string) error {
	res := r.db.Delete(&models.TrainerLocation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete trainer location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrLocationNotFound
	}
	return nil
}
