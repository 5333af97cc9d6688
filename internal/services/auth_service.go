package services

import (
	"fmt"
	"strings"

	"pawmarket/internal/models"
	"pawmarket/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for accounts, credentials, and the
// bearer-token session flow.
type AuthService struct {
	userRepo   repositories.UserRepository
	mqClient   EventPublisher
	bcryptCost int
}

// NewAuthService creates a new AuthService. A cost outside bcrypt's valid
// range falls back to the default cost.
func NewAuthService(userRepo repositories.UserRepository, mqClient EventPublisher, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		mqClient:   mqClient,
		bcryptCost: bcryptCost,
	}
}

// CreateAccount hashes the password, mints the session token, and persists
// the user. The username pre-check is advisory only; the store's unique
// index is the backstop for concurrent sign-ups with the same name.
func (s *AuthService) CreateAccount(user *models.User, password string) error {
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return models.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	// The token is the sole session credential: a random 128-bit UUID with
	// no expiry. Uniqueness is guaranteed by the store's unique index.
	user.Token = uuid.New().String()

	if user.Role == "" {
		user.Role = models.RoleClient
	}

	if err := s.userRepo.Create(user); err != nil {
		return err
	}

	publishActivity(s.mqClient, "user.created", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
	return nil
}

// Login verifies the credentials and returns the stored user, including the
// durable session token minted at sign-up. Login never rotates the token.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, models.ErrInvalidCredentials
	}

	// CompareHashAndPassword also errors on a malformed stored hash, which
	// fails closed as invalid credentials rather than a 500.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// AuthenticateHeader resolves a raw Authorization header value to a user.
// The four failure modes stay distinct so the HTTP layer can report them
// with different messages, even though all map to 401.
func (s *AuthService) AuthenticateHeader(header string) (*models.User, error) {
	if header == "" {
		return nil, models.ErrMissingAuthorization
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, models.ErrInvalidScheme
	}

	token, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, models.ErrMalformedToken
	}

	user, err := s.userRepo.GetByToken(token.String())
	if err != nil {
		return nil, models.ErrInvalidToken
	}
	return user, nil
}

// GetProfile returns the public view of a user: id and username only.
func (s *AuthService) GetProfile(username string) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return &models.Profile{ID: user.ID, Username: user.Username}, nil
}

// DeleteAccount removes the user and cascades to their dogs and trainer
// locations, returning the deleted representation.
func (s *AuthService) DeleteAccount(id string) (*models.User, error) {
	user, err := s.userRepo.DeleteAccount(id)
	if err != nil {
		return nil, err
	}

	publishActivity(s.mqClient, "user.deleted", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}
