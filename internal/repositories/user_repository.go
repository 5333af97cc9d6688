package repositories

import "pawmarket/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByToken(token string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// DeleteAccount removes the user and everything they own (dogs, trainer
	// locations) in a single store transaction, returning the deleted user.
	DeleteAccount(id string) (*models.User, error)
}
