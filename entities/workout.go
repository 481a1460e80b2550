package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout groups exercises under a named session. Deleting a workout
// removes its exercises as well.
type Workout struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"size:50" json:"name"`
	Description string    `gorm:"size:150" json:"description"`
	Completed   bool      `json:"completed"`
	IsShared    bool      `json:"is_shared"`
	UserID      string    `gorm:"index;type:varchar(36)" json:"user_id"`
	ChallengeID *string   `gorm:"index;type:varchar(36)" json:"challenge_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}
