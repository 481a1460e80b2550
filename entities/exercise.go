package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseType is the closed set of exercise variants. Type-specific
// behavior (validation bounds, form fields, display) switches on it
// explicitly; there is no dispatch by class name.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseEndurance   ExerciseType = "endurance"
	ExerciseBalance     ExerciseType = "balance"
	ExerciseFlexibility ExerciseType = "flexibility"
)

// ExerciseTypes lists all variants in display order.
func ExerciseTypes() []ExerciseType {
	return []ExerciseType{ExerciseStrength, ExerciseEndurance, ExerciseBalance, ExerciseFlexibility}
}

// ParseExerciseType resolves a type name from a request. The legacy
// class-style names are accepted alongside the short forms.
func ParseExerciseType(s string) (ExerciseType, bool) {
	switch s {
	case "strength", "StrengthTrainingExercise":
		return ExerciseStrength, true
	case "endurance", "EnduranceTrainingExercise":
		return ExerciseEndurance, true
	case "balance", "BalanceExercise":
		return ExerciseBalance, true
	case "flexibility", "FlexibilityExercise":
		return ExerciseFlexibility, true
	}
	return "", false
}

// Exercise is one table for all four variants. Variant fields not
// belonging to Type stay NULL / empty.
type Exercise struct {
	ID              string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Type            ExerciseType `gorm:"size:20;index" json:"type"`
	Name            string       `gorm:"size:50" json:"name"`
	Description     string       `gorm:"size:150" json:"description"`
	WorkoutID       string       `gorm:"index;type:varchar(36)" json:"workout_id"`
	MuscleGroupID   string       `gorm:"index;type:varchar(36)" json:"muscle_group_id"`
	UserID          string       `gorm:"index;type:varchar(36)" json:"user_id"`
	Weight          *float64     `json:"weight,omitempty"`
	Repetitions     *int         `json:"repetitions,omitempty"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	DistanceKM      *float64     `json:"distance_km,omitempty"`
	DifficultyLevel string       `gorm:"size:50" json:"difficulty_level,omitempty"`
	StretchType     string       `gorm:"size:50" json:"stretch_type,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// Label is the human-readable variant name.
func (t ExerciseType) Label() string {
	switch t {
	case ExerciseStrength:
		return "Strength Training"
	case ExerciseEndurance:
		return "Endurance Training"
	case ExerciseBalance:
		return "Balance"
	case ExerciseFlexibility:
		return "Flexibility"
	}
	return string(t)
}

// Data renders the variant fields for display.
func (e *Exercise) Data() []string {
	switch e.Type {
	case ExerciseStrength:
		return []string{
			fmt.Sprintf("Weight: %gkg", deref(e.Weight)),
			fmt.Sprintf("Repetitions: x%d", derefInt(e.Repetitions)),
		}
	case ExerciseEndurance:
		return []string{
			fmt.Sprintf("Duration: %dm", derefInt(e.DurationMinutes)),
			fmt.Sprintf("Distance: %gkm", deref(e.DistanceKM)),
		}
	case ExerciseBalance:
		return []string{"Difficulty: " + e.DifficultyLevel, ""}
	case ExerciseFlexibility:
		return []string{"Stretch type: " + e.StretchType, ""}
	}
	return nil
}

// FormField describes one variant-specific input a client should render.
type FormField struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"` // "number" or "text"
	Placeholder string `json:"placeholder"`
}

// FormFields lists the variant-specific inputs for a type.
func (t ExerciseType) FormFields() []FormField {
	switch t {
	case ExerciseStrength:
		return []FormField{
			{Name: "weight", Kind: "number", Placeholder: "Weight (kg)"},
			{Name: "repetitions", Kind: "number", Placeholder: "Repetitions"},
		}
	case ExerciseEndurance:
		return []FormField{
			{Name: "duration_minutes", Kind: "number", Placeholder: "Duration (minutes)"},
			{Name: "distance_km", Kind: "number", Placeholder: "Distance (km)"},
		}
	case ExerciseBalance:
		return []FormField{
			{Name: "difficulty_level", Kind: "text", Placeholder: "Difficulty Level"},
		}
	case ExerciseFlexibility:
		return []FormField{
			{Name: "stretch_type", Kind: "text", Placeholder: "Stretch Type"},
		}
	}
	return nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
