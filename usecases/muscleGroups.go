package usecases

import (
	"workout-server/entities"
	"workout-server/repositories"
	"workout-server/validators"
)

type MuscleGroupUseCase struct {
	repo repositories.MuscleGroupRepository
}

func NewMuscleGroupUseCase(repo repositories.MuscleGroupRepository) *MuscleGroupUseCase {
	return &MuscleGroupUseCase{repo: repo}
}

// Create validates and stores a muscle group. Muscle groups are shared
// reference data seeded by admin tooling, not per-user records.
func (uc *MuscleGroupUseCase) Create(name, description string) (Result[*entities.MuscleGroup], error) {
	errs := validators.Text("Name", name)
	errs = append(errs, validators.Text("Description", description)...)
	if len(errs) > 0 {
		return fail[*entities.MuscleGroup](errs), nil
	}

	group := &entities.MuscleGroup{
		Name:        name,
		Description: description,
	}
	if err := uc.repo.Create(group); err != nil {
		return Result[*entities.MuscleGroup]{}, err
	}
	return succeed(group), nil
}

// List returns every muscle group ordered by name.
func (uc *MuscleGroupUseCase) List() ([]entities.MuscleGroup, error) {
	return uc.repo.GetAll()
}
