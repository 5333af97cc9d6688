package repositories

import (
	"sync"

	"pawmarket/internal/models"

	"github.com/google/uuid"
)

// MockDogRepository is an in-memory implementation of DogRepository.
type MockDogRepository struct {
	dogs map[string]models.Dog
	mu   sync.RWMutex
}

// NewMockDogRepository creates a new instance of MockDogRepository.
func NewMockDogRepository() *MockDogRepository {
	return &MockDogRepository{
		dogs: make(map[string]models.Dog),
	}
}

// GetAll returns all dogs.
func (r *MockDogRepository) GetAll() ([]models.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dogList := make([]models.Dog, 0, len(r.dogs))
	for _, d := range r.dogs {
		dogList = append(dogList, d)
	}
	return dogList, nil
}

// GetByID returns a dog by its ID.
func (r *MockDogRepository) GetByID(id string) (*models.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dog, ok := r.dogs[id]
	if !ok {
		return nil, models.ErrDogNotFound
	}
	return &dog, nil
}

// GetByOwner returns all dogs owned by the given user.
func (r *MockDogRepository) GetByOwner(ownerID string) ([]models.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dogList := make([]models.Dog, 0)
	for _, d := range r.dogs {
		if d.OwnerID == ownerID {
			dogList = append(dogList, d)
		}
	}
	return dogList, nil
}

// Create adds a new dog.
func (r *MockDogRepository) Create(dog *models.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dog.ID == "" {
		dog.ID = uuid.New().String()
	}
	r.dogs[dog.ID] = *dog
	return nil
}

// Update modifies an existing dog.
func (r *MockDogRepository) Update(dog *models.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.dogs[dog.ID]
	if !ok {
		return models.ErrDogNotFound
	}
	r.dogs[dog.ID] = *dog
	return nil
}

// Delete removes a dog by its ID.
func (r *MockDogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.dogs[id]
	if !ok {
		return models.ErrDogNotFound
	}
	delete(r.dogs, id)
	return nil
}
