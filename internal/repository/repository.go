package repository

import (
	"context"

	"fithub/backend/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// FacilityRepository defines the interface for interacting with facilities.
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) (string, error)
	GetByName(ctx context.Context, name string) (*domain.Facility, error)
	GetAll(ctx context.Context) ([]domain.Facility, error)
	UpdateName(ctx context.Context, facilityID, name string) error
	Delete(ctx context.Context, facilityID string) error
}

// CategoryRepository defines the interface for interacting with categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (string, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	UpdateName(ctx context.Context, categoryID, name string) error
	Delete(ctx context.Context, categoryID string) error
}

// GymRepository defines the interface for interacting with gyms.
type GymRepository interface {
	Create(ctx context.Context, gym *domain.Gym) (string, error)
	GetByName(ctx context.Context, name string) (*domain.Gym, error)
	GetAll(ctx context.Context) ([]domain.Gym, error)
	Update(ctx context.Context, gymID string, patch *domain.GymPatch) error
	Delete(ctx context.Context, gymID string) error
}

// TrainerFilter describes the selection criteria for trainer listings and
// search. Zero/nil fields contribute no clause. Skills names are matched
// against the fixed whitelist; unknown names are dropped silently.
type TrainerFilter struct {
	Status         string
	Specialization string
	Query          string
	MinExperience  *int
	MaxExperience  *int
	Languages      []string
	Skills         []string
}

// TrainerRepository defines the interface for interacting with trainers.
// List returns the window of documents plus the total count matching the
// filter, independent of page/limit.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (string, error)
	GetByID(ctx context.Context, trainerID string) (*domain.Trainer, error)
	GetByNameAndSpecialization(ctx context.Context, fullName, specialization string) (*domain.Trainer, error)
	List(ctx context.Context, filter TrainerFilter, page, limit int) ([]domain.Trainer, int64, error)
	Update(ctx context.Context, trainerID string, patch *domain.TrainerPatch) error
	SoftDelete(ctx context.Context, trainerID string) error
	Delete(ctx context.Context, trainerID string) error
}
