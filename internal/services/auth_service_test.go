package services_test

import (
	"io"
	"log"
	"os"
	"testing"

	"pawmarket/internal/models"
	"pawmarket/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByToken(token string) (*models.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteAccount(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// TestMain suppresses logging for cleaner test output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_CreateAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	user := &models.User{Username: "testuser"}

	// Test successful account creation
	mockRepo.On("GetByUsername", "testuser").Return(nil, models.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.CreateAccount(user, "password123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// The password is stored as a bcrypt hash, never in the clear.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	// The session token is a well-formed UUID.
	_, err = uuid.Parse(user.Token)
	assert.NoError(t, err)

	// The role defaults to client when omitted.
	assert.Equal(t, models.RoleClient, user.Role)

	// Test username already taken (application-level pre-check)
	mockRepo.On("GetByUsername", "testuser").Return(&models.User{ID: "1"}, nil).Once()
	err = authService.CreateAccount(&models.User{Username: "testuser"}, "password123")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
	mockRepo.AssertExpectations(t)

	// Test the store-level unique constraint backstop winning the race
	mockRepo.On("GetByUsername", "testuser").Return(nil, models.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(models.ErrUsernameTaken).Once()
	err = authService.CreateAccount(&models.User{Username: "testuser"}, "password123")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	token := uuid.New().String()
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Password: string(hashedPassword),
		Token:    token,
	}

	// Test successful login returns the durable token minted at sign-up
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Twice()

	got, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.Equal(t, token, got.Token)

	// A second login returns the same token: login never rotates it.
	again, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.Equal(t, token, again.Token)
	mockRepo.AssertExpectations(t)

	// Test wrong password
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, err = authService.Login("testuser", "wrongpassword")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Test unknown user yields the same generic failure
	mockRepo.On("GetByUsername", "nobody").Return(nil, models.ErrUserNotFound).Once()
	_, err = authService.Login("nobody", "password123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// A malformed stored hash fails closed as invalid credentials.
	broken := &models.User{ID: "user-456", Username: "broken", Password: "not-a-bcrypt-hash"}
	mockRepo.On("GetByUsername", "broken").Return(broken, nil).Once()
	_, err = authService.Login("broken", "password123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_AuthenticateHeader(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	token := uuid.New().String()
	user := &models.User{ID: "user-123", Username: "testuser", Token: token}

	// Test missing header
	_, err := authService.AuthenticateHeader("")
	assert.ErrorIs(t, err, models.ErrMissingAuthorization)

	// Test wrong scheme
	_, err = authService.AuthenticateHeader("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, models.ErrInvalidScheme)

	// Test scheme without a credential
	_, err = authService.AuthenticateHeader("Bearer")
	assert.ErrorIs(t, err, models.ErrInvalidScheme)

	// Test malformed (non-UUID) token
	_, err = authService.AuthenticateHeader("Bearer not-a-uuid")
	assert.ErrorIs(t, err, models.ErrMalformedToken)

	// Test well-formed token with no matching user
	unknown := uuid.New().String()
	mockRepo.On("GetByToken", unknown).Return(nil, models.ErrUserNotFound).Once()
	_, err = authService.AuthenticateHeader("Bearer " + unknown)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
	mockRepo.AssertExpectations(t)

	// Test successful resolution
	mockRepo.On("GetByToken", token).Return(user, nil).Once()
	got, err := authService.AuthenticateHeader("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", got.ID)
	mockRepo.AssertExpectations(t)

	// The scheme comparison is case-insensitive.
	mockRepo.On("GetByToken", token).Return(user, nil).Once()
	_, err = authService.AuthenticateHeader("bearer " + token)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_GetProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	user := &models.User{ID: "user-123", Username: "testuser", Token: "secret-token"}

	// The profile exposes id and username only.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	profile, err := authService.GetProfile("testuser")
	assert.NoError(t, err)
	assert.Equal(t, &models.Profile{ID: "user-123", Username: "testuser"}, profile)
	mockRepo.AssertExpectations(t)

	// Test unknown username
	mockRepo.On("GetByUsername", "nobody").Return(nil, models.ErrUserNotFound).Once()
	_, err = authService.GetProfile("nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_DeleteAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	user := &models.User{ID: "user-123", Username: "testuser"}

	// Test successful deletion returns the deleted representation
	mockRepo.On("DeleteAccount", "user-123").Return(user, nil).Once()
	deleted, err := authService.DeleteAccount("user-123")
	assert.NoError(t, err)
	assert.Equal(t, "testuser", deleted.Username)
	mockRepo.AssertExpectations(t)

	// Test deletion of a missing user
	mockRepo.On("DeleteAccount", "no-such-user").Return(nil, models.ErrUserNotFound).Once()
	_, err = authService.DeleteAccount("no-such-user")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
