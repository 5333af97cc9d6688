package services

import (
	"pawmarket/internal/models"
	"pawmarket/internal/repositories"
)

// DogService handles business logic related to dog profiles.
type DogService struct {
	dogRepo  repositories.DogRepository
	userRepo repositories.UserRepository
	mqClient EventPublisher
}

// NewDogService creates a new DogService.
func NewDogService(dogRepo repositories.DogRepository, userRepo repositories.UserRepository, mqClient EventPublisher) *DogService {
	return &DogService{
		dogRepo:  dogRepo,
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// RegisterDog creates a new dog profile. The owner must exist; nothing else
// about the caller is checked.
func (s *DogService) RegisterDog(dog *models.Dog) error {
	if _, err := s.userRepo.GetByID(dog.OwnerID); err != nil {
		return err
	}

	if err := s.dogRepo.Create(dog); err != nil {
		return err
	}

	publishActivity(s.mqClient, "dog.registered", map[string]interface{}{
		"dog_id":   dog.ID,
		"name":     dog.Name,
		"owner_id": dog.OwnerID,
	})
	return nil
}

// ListDogs retrieves all dog profiles.
func (s *DogService) ListDogs() ([]models.Dog, error) {
	return s.dogRepo.GetAll()
}

// GetDog retrieves a single dog by its ID.
func (s *DogService) GetDog(id string) (*models.Dog, error) {
	return s.dogRepo.GetByID(id)
}

// ListDogsByOwner retrieves all dogs owned by the given user.
func (s *DogService) ListDogsByOwner(ownerID string) ([]models.Dog, error) {
	return s.dogRepo.GetByOwner(ownerID)
}

// UpdateDog applies a partial update to a dog. Only the fields set in the
// patch are touched.
func (s *DogService) UpdateDog(id string, patch models.DogPatch) (*models.Dog, error) {
	dog, err := s.dogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		dog.Name = *patch.Name
	}
	if patch.Breed != nil {
		dog.Breed = *patch.Breed
	}
	if patch.Age != nil {
		dog.Age = *patch.Age
	}

	if err := s.dogRepo.Update(dog); err != nil {
		return nil, err
	}
	return dog, nil
}

// DeleteDog deletes a dog by its ID and returns the deleted representation.
// There is no ownership check on dogs.
func (s *DogService) DeleteDog(id string) (*models.Dog, error) {
	dog, err := s.dogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.dogRepo.Delete(id); err != nil {
		return nil, err
	}
	return dog, nil
}
