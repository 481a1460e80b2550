package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MuscleGroup is shared reference data: every user sees the same set.
type MuscleGroup struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"size:50" json:"name"`
	Description string    `gorm:"size:150" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (mg *MuscleGroup) BeforeCreate(tx *gorm.DB) (err error) {
	if mg.ID == "" {
		mg.ID = uuid.New().String()
	}
	return
}
