// Package validators holds the pure field validation rules. Every
// function accumulates human-readable error strings instead of failing
// on the first violation, so one submission reports all of its problems.
package validators

import (
	"regexp"
	"strconv"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()?]*$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]*$`)

	// Matches printable text with basic punctuation, rejecting empty and
	// whitespace-only strings.
	textClass = `[A-Za-z0-9!@#$%^&*"':;/?,<.>()-_=+\]\[~` + "`" + `]`
	textRegex = regexp.MustCompile(`^\s*` + textClass + `+(?:\s+` + textClass + `+)*\s*$`)
)

// Username checks length and character class. Uniqueness is checked by
// the manager against the store.
func Username(username string) []string {
	var errs []string
	if len(username) < 2 {
		errs = append(errs, "Username is required and must be at least 2 characters long.")
	}
	if !usernameRegex.MatchString(username) {
		errs = append(errs, "Username must contain letters, numbers and basic characters only.")
	}
	return errs
}

// Email checks length and format. Uniqueness is checked by the manager.
// Format is only tested once the length requirement passes.
func Email(email string) []string {
	var errs []string
	if len(email) < 5 {
		errs = append(errs, "Email field must be at least 5 characters.")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "Email field is not a valid email format.")
	}
	return errs
}

// PasswordPair checks the password and its confirmation. The match test
// only runs once both fields meet the length requirement.
func PasswordPair(password, confirmation string) []string {
	var errs []string
	if len(password) < 8 || len(confirmation) < 8 {
		errs = append(errs, "Password fields are required and must be at least 8 characters.")
	} else if password != confirmation {
		errs = append(errs, "Password and confirmation must match.")
	}
	return errs
}

// Text checks a workout or exercise text field (label is "Name" or
// "Description") for length and the permissive text pattern.
func Text(label, value string) []string {
	var errs []string
	if len(value) < 2 {
		errs = append(errs, label+" is required and must be at least 2 characters long.")
	}
	if !textRegex.MatchString(value) {
		errs = append(errs, label+" must contain letters, numbers and basic characters only.")
	}
	return errs
}

// ExerciseBase checks the fields shared by all exercise variants.
func ExerciseBase(name, description, workoutID, muscleGroupID string) []string {
	var errs []string
	if name == "" || description == "" || workoutID == "" || muscleGroupID == "" {
		errs = append(errs, "All required fields are mandatory.")
	}
	if len(name) < 2 {
		errs = append(errs, "Name is required and must be at least 2 characters long.")
	}
	if len(description) < 2 {
		errs = append(errs, "Description is required and must be at least 2 characters long.")
	}
	return errs
}

// Decimal parses a raw decimal field and checks its inclusive bounds.
// A max of 0 means unbounded above.
func Decimal(label, raw string, min, max float64) (float64, []string) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, []string{label + " must be a number."}
	}
	var errs []string
	if value < min {
		errs = append(errs, label+" is required and must be at least 1.")
	}
	if max > 0 && value > max {
		errs = append(errs, label+" is required and must be smaller than 9999.")
	}
	return value, errs
}

// Integer parses a raw integer field and checks its inclusive bounds.
// A max of 0 means unbounded above. The upper-bound message carries no
// trailing period, unlike Decimal's.
func Integer(label, raw string, min, max int) (int, []string) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, []string{label + " must be a number."}
	}
	var errs []string
	if value < min {
		errs = append(errs, label+" is required and must be at least 1.")
	}
	if max > 0 && value > max {
		errs = append(errs, label+" is required and must be smaller than 9999")
	}
	return value, errs
}
