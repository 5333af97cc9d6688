package models

import "time"

// TrainerLocation is a place where a trainer offers sessions.
type TrainerLocation struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Address   string  `json:"address,omitempty" gorm:"type:varchar(255)"`
	TrainerID string  `json:"trainer_id" gorm:"index;type:varchar(36)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationPatch is a partial update to a trainer location. Nil fields are
// left untouched; an explicit JSON null is treated the same as an omitted
// field.
type LocationPatch struct {
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}
