package models

import "time"

// Dog is a dog profile registered by a user.
type Dog struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name    string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Breed   string `json:"breed" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Age     string `json:"age,omitempty" gorm:"type:varchar(16)"`
	OwnerID string `json:"owner_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DogPatch is a partial update to a dog. Nil fields are left untouched; an
// explicit JSON null is treated the same as an omitted field.
type DogPatch struct {
	Name  *string `json:"name"`
	Breed *string `json:"breed"`
	Age   *string `json:"age"`
}
