package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account holder. Workouts and exercises are owned by exactly
// one user; ownership is checked at the handler layer.
type User struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username           string    `gorm:"size:20;uniqueIndex" json:"username"`
	Email              string    `gorm:"size:50;uniqueIndex" json:"email"`
	PasswordHash       string    `gorm:"size:255" json:"-"`
	ProfilePhotoURL    string    `gorm:"size:255" json:"profile_photo_url,omitempty"`
	BackgroundPhotoURL string    `gorm:"size:255" json:"background_photo_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
