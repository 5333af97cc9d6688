package services

import (
	"pawmarket/internal/models"
	"pawmarket/internal/repositories"
)

// LocationService handles business logic related to trainer locations.
type LocationService struct {
	locationRepo repositories.LocationRepository
	mqClient     EventPublisher
}

// NewLocationService creates a new LocationService.
func NewLocationService(locationRepo repositories.LocationRepository, mqClient EventPublisher) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		mqClient:     mqClient,
	}
}

// ListLocations retrieves all trainer locations. The listing is public.
func (s *LocationService) ListLocations() ([]models.TrainerLocation, error) {
	return s.locationRepo.GetAll()
}

// GetLocation retrieves a single trainer location by its ID.
func (s *LocationService) GetLocation(id string) (*models.TrainerLocation, error) {
	return s.locationRepo.GetByID(id)
}

// CreateLocation creates a trainer location owned by the caller. Only
// trainers may create locations.
func (s *LocationService) CreateLocation(caller *models.User, location *models.TrainerLocation) error {
	if caller.Role != models.RoleTrainer {
		return models.ErrTrainerRoleRequired
	}
	location.TrainerID = caller.ID

	if err := s.locationRepo.Create(location); err != nil {
		return err
	}

	publishActivity(s.mqClient, "location.created", map[string]interface{}{
		"location_id": location.ID,
		"name":        location.Name,
		"trainer_id":  location.TrainerID,
	})
	return nil
}

// UpdateLocation applies a partial update to a trainer location. The caller
// must be the owning trainer; a mismatch leaves the location unchanged.
func (s *LocationService) UpdateLocation(caller *models.User, id string, patch models.LocationPatch) (*models.TrainerLocation, error) {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location.TrainerID != caller.ID {
		return nil, models.ErrNotOwner
	}

	if patch.Name != nil {
		location.Name = *patch.Name
	}
	if patch.Latitude != nil {
		location.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		location.Longitude = *patch.Longitude
	}
	if patch.Address != nil {
		location.Address = *patch.Address
	}

	if err := s.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// DeleteLocation deletes a trainer location and returns the deleted
// representation. The caller must be the owning trainer.
func (s *LocationService) DeleteLocation(caller *models.User, id string) (*models.TrainerLocation, error) {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location.TrainerID != caller.ID {
		return nil, models.ErrNotOwner
	}

	if err := s.locationRepo.Delete(id); err != nil {
		return nil, err
	}
	return location, nil
}
