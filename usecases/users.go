package usecases

import (
	"errors"

	"workout-server/entities"
	"workout-server/repositories"
	"workout-server/validators"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Credential errors deliberately do not reveal whether the username or
// the password was wrong.
const (
	msgBadCredentials   = "Username or password is incorrect."
	msgCorruptUser      = "This user is corrupt. Please contact the administrator."
	msgUsernameTaken    = "Username is already registered to another user."
	msgEmailTaken       = "Email address is already registered to another user."
	msgAllFieldsNeeded  = "All fields are required."
	msgWrongCurrentPass = "Current Password is incorrect."
)

type UserUseCase struct {
	repo     repositories.UserRepository
	hashCost int
}

// NewUserUseCase builds the user manager. hashCost is the bcrypt cost
// factor; production runs with 14.
func NewUserUseCase(repo repositories.UserRepository, hashCost int) *UserUseCase {
	if hashCost == 0 {
		hashCost = 14
	}
	return &UserUseCase{repo: repo, hashCost: hashCost}
}

type RegisterInput struct {
	Username             string `form:"username" json:"username"`
	Email                string `form:"email" json:"email"`
	Password             string `form:"password" json:"password"`
	PasswordConfirmation string `form:"password_confirmation" json:"password_confirmation"`
}

// Register validates and creates a new user with a hashed password.
// Every violated rule is reported; nothing is persisted on failure.
func (uc *UserUseCase) Register(in RegisterInput) (Result[*entities.User], error) {
	errs := validators.Username(in.Username)

	taken, err := uc.repo.CountByUsername(in.Username)
	if err != nil {
		return Result[*entities.User]{}, err
	}
	if taken > 0 {
		errs = append(errs, msgUsernameTaken)
	}

	emailErrs := validators.Email(in.Email)
	errs = append(errs, emailErrs...)
	if len(emailErrs) == 0 {
		taken, err := uc.repo.CountByEmail(in.Email)
		if err != nil {
			return Result[*entities.User]{}, err
		}
		if taken > 0 {
			errs = append(errs, msgEmailTaken)
		}
	}

	errs = append(errs, validators.PasswordPair(in.Password, in.PasswordConfirmation)...)

	if len(errs) > 0 {
		return fail[*entities.User](errs), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return Result[*entities.User]{}, err
	}

	user := &entities.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := uc.repo.Create(user); err != nil {
		return Result[*entities.User]{}, err
	}
	return succeed(user), nil
}

// Login verifies credentials. The username lookup is case-sensitive. A
// stored hash bcrypt cannot parse is reported as account corruption,
// distinct from bad credentials.
func (uc *UserUseCase) Login(username, password string) (Result[*entities.User], error) {
	if username == "" || password == "" {
		return fail[*entities.User]([]string{msgAllFieldsNeeded}), nil
	}

	user, err := uc.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail[*entities.User]([]string{msgBadCredentials}), nil
		}
		return Result[*entities.User]{}, err
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); {
	case err == nil:
		return succeed(user), nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fail[*entities.User]([]string{msgBadCredentials}), nil
	default:
		return fail[*entities.User]([]string{msgCorruptUser}), nil
	}
}

type UpdateProfileInput struct {
	Username           string `form:"username" json:"username"`
	Email              string `form:"email" json:"email"`
	ProfilePhotoURL    string `form:"profile_photo_url" json:"profile_photo_url"`
	BackgroundPhotoURL string `form:"background_photo_url" json:"background_photo_url"`
}

// Update validates and applies profile changes. Uniqueness is re-checked
// only for fields that actually changed, so a user can resubmit their own
// username or email.
func (uc *UserUseCase) Update(userID string, in UpdateProfileInput) (Result[*entities.User], error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return Result[*entities.User]{}, err
	}

	errs := validators.Username(in.Username)
	if in.Username != user.Username {
		taken, err := uc.repo.CountByUsername(in.Username)
		if err != nil {
			return Result[*entities.User]{}, err
		}
		if taken > 0 {
			errs = append(errs, msgUsernameTaken)
		}
	}

	emailErrs := validators.Email(in.Email)
	errs = append(errs, emailErrs...)
	if len(emailErrs) == 0 && in.Email != user.Email {
		taken, err := uc.repo.CountByEmail(in.Email)
		if err != nil {
			return Result[*entities.User]{}, err
		}
		if taken > 0 {
			errs = append(errs, msgEmailTaken)
		}
	}

	if len(errs) > 0 {
		return fail[*entities.User](errs), nil
	}

	fields := map[string]interface{}{
		"username":             in.Username,
		"email":                in.Email,
		"profile_photo_url":    in.ProfilePhotoURL,
		"background_photo_url": in.BackgroundPhotoURL,
	}
	if err := uc.repo.UpdateFields(userID, fields); err != nil {
		return Result[*entities.User]{}, err
	}

	user.Username = in.Username
	user.Email = in.Email
	user.ProfilePhotoURL = in.ProfilePhotoURL
	user.BackgroundPhotoURL = in.BackgroundPhotoURL
	return succeed(user), nil
}

type UpdatePasswordInput struct {
	CurrentPassword string `form:"current_password" json:"current_password"`
	NewPassword     string `form:"new_password" json:"new_password"`
	RepeatPassword  string `form:"repeat_password" json:"repeat_password"`
}

// UpdatePassword verifies the current password before accepting the new
// pair, then stores a fresh hash.
func (uc *UserUseCase) UpdatePassword(userID string, in UpdatePasswordInput) (Result[*entities.User], error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return Result[*entities.User]{}, err
	}

	errs := validators.PasswordPair(in.NewPassword, in.RepeatPassword)

	switch err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); {
	case err == nil:
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		errs = append(errs, msgWrongCurrentPass)
	default:
		errs = append(errs, msgCorruptUser)
	}

	if len(errs) > 0 {
		return fail[*entities.User](errs), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.hashCost)
	if err != nil {
		return Result[*entities.User]{}, err
	}
	if err := uc.repo.UpdateFields(userID, map[string]interface{}{"password_hash": string(hash)}); err != nil {
		return Result[*entities.User]{}, err
	}
	user.PasswordHash = string(hash)
	return succeed(user), nil
}

// Get looks up a user by ID.
func (uc *UserUseCase) Get(id string) (*entities.User, error) {
	return uc.repo.GetByID(id)
}
