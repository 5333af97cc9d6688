package repositories

import (
	"sync"
	"time"

	"pawmarket/internal/models"

	"github.com/google/uuid"
)

// MockLocationRepository is an in-memory implementation of LocationRepository.
type MockLocationRepository struct {
	locations map[string]models.TrainerLocation
	mu        sync.RWMutex
}

// NewMockLocationRepository creates a new instance of MockLocationRepository.
func NewMockLocationRepository() *MockLocationRepository {
	return &MockLocationRepository{
		locations: make(map[string]models.TrainerLocation),
	}
}

// GetAll returns all trainer locations.
func (r *MockLocationRepository) GetAll() ([]models.TrainerLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locationList := make([]models.TrainerLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		locationList = append(locationList, loc)
	}
	return locationList, nil
}

// GetByID returns a trainer location by its ID.
func (r *MockLocationRepository) GetByID(id string) (*models.TrainerLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	location, ok := r.locations[id]
	if !ok {
		return nil, models.ErrLocationNotFound
	}
	return &location, nil
}

// Create adds a new trainer location.
func (r *MockLocationRepository) Create(location *models.TrainerLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	location.CreatedAt = time.Now()
	location.UpdatedAt = time.Now()
	r.locations[location.ID] = *location
	return nil
}

// Update modifies an existing trainer location.
func (r *MockLocationRepository) Update(location *models.TrainerLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.locations[location.ID]
	if !ok {
		return models.ErrLocationNotFound
	}
	location.UpdatedAt = time.Now()
	r.locations[location.ID] = *location
	return nil
}

// Delete removes a trainer location by its ID.
func (r *MockLocationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.locations[id]
	if !ok {
		return models.ErrLocationNotFound
	}
	delete(r.locations, id)
	return nil
}
