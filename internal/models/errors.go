package models

import "errors"

// Sentinel errors returned by services and mapped to HTTP statuses at the
// handler layer.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDogNotFound      = errors.New("dog not found")
	ErrLocationNotFound = errors.New("trainer location not found")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTrainerRoleRequired = errors.New("trainer role required")
	ErrNotOwner            = errors.New("not the owner of this resource")

	// Auth guard failures. All surface as 401 but carry distinct messages.
	ErrMissingAuthorization = errors.New("missing authorization header")
	ErrInvalidScheme        = errors.New("authorization scheme must be Bearer")
	ErrMalformedToken       = errors.New("malformed bearer token")
	ErrInvalidToken         = errors.New("invalid bearer token")
)
