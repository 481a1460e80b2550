package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserChallenge records that a user joined a challenge, optionally bound
// to the shared workout that carries the challenge's exercises. One row
// per (user, challenge).
type UserChallenge struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string    `gorm:"type:varchar(36);uniqueIndex:idx_user_challenge" json:"user_id"`
	ChallengeID string    `gorm:"type:varchar(36);uniqueIndex:idx_user_challenge" json:"challenge_id"`
	WorkoutID   *string   `gorm:"type:varchar(36)" json:"workout_id,omitempty"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
	// ExerciseStatus is a JSON array of booleans, one per exercise in the
	// challenge workout.
	ExerciseStatus string `gorm:"type:text" json:"-"`
}

func (uc *UserChallenge) BeforeCreate(tx *gorm.DB) (err error) {
	if uc.ID == "" {
		uc.ID = uuid.New().String()
	}
	if uc.ExerciseStatus == "" {
		uc.ExerciseStatus = "[]"
	}
	return
}

// Status decodes the per-exercise completion list.
func (uc *UserChallenge) Status() []bool {
	var out []bool
	if err := json.Unmarshal([]byte(uc.ExerciseStatus), &out); err != nil {
		return nil
	}
	return out
}

// SetStatus encodes the per-exercise completion list.
func (uc *UserChallenge) SetStatus(status []bool) {
	if status == nil {
		status = []bool{}
	}
	b, _ := json.Marshal(status)
	uc.ExerciseStatus = string(b)
}
