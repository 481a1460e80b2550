package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Challenge is a template for a shared workout goal. Like muscle groups,
// challenges are global: every user can browse and join them.
type Challenge struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"size:50" json:"name"`
	Level       int       `gorm:"default:1" json:"level"`
	Description string    `gorm:"size:150" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ch *Challenge) BeforeCreate(tx *gorm.DB) (err error) {
	if ch.ID == "" {
		ch.ID = uuid.New().String()
	}
	return
}
