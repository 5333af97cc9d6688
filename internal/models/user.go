package models

import "time"

// Role is the account type of a user. Only the two values below are valid;
// anything else is rejected at the request boundary.
type Role string

const (
	RoleClient  Role = "client"
	RoleTrainer Role = "trainer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleTrainer
}

// User represents an account in the marketplace.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Token    string `json:"token" gorm:"uniqueIndex;type:varchar(36)"`
	Role     Role   `json:"role" gorm:"type:varchar(16)"`

	// Trainer metadata. Empty for clients.
	Experience     string `json:"experience,omitempty" gorm:"type:varchar(255)"`
	Specialties    string `json:"specialties,omitempty" gorm:"type:varchar(255)"`
	Phone          string `json:"phone,omitempty" gorm:"type:varchar(32)"`
	ProfilePicture string `json:"profile_picture,omitempty" gorm:"type:varchar(512)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the public view of a user: id and username, nothing else.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
