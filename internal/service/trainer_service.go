package service

import (
	"context"
	"errors"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrTrainerExists   = errors.New("Trainer with similar name and specialization already exists.")
	ErrTrainerNotFound = errors.New("Trainer not found.")
)

// --- Service Interface ---
type TrainerService interface {
	Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	List(ctx context.Context, status, specialization string, page, limit int) ([]domain.Trainer, int64, error)
	GetByID(ctx context.Context, trainerID string) (*domain.Trainer, error)
	Update(ctx context.Context, trainerID string, patch *domain.TrainerPatch) error
	SoftDelete(ctx context.Context, trainerID string) error
	HardDelete(ctx context.Context, trainerID string) error
	BySpecialization(ctx context.Context, specialization string, page, limit int) ([]domain.Trainer, int64, error)
	Search(ctx context.Context, filter repository.TrainerFilter, page, limit int) ([]domain.Trainer, int64, error)
}

// --- Service Implementation ---

type trainerService struct {
	trainerRepo repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

// Create stores a new trainer profile. A trainer with the same name and
// primary specialization is a conflict, caught either by the advisory
// pre-check or by the compound unique index.
func (s *trainerService) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if trainer.FullName == "" || trainer.PrimarySpecialization == "" {
		return nil, ErrMissingFields
	}

	_, err := s.trainerRepo.GetByNameAndSpecialization(ctx, trainer.FullName, trainer.PrimarySpecialization)
	if err == nil {
		return nil, ErrTrainerExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.trainerRepo.Create(ctx, trainer); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrTrainerExists
		}
		return nil, err
	}
	return trainer, nil
}

// List returns one page of trainers with optional status and specialization
// equality filters.
func (s *trainerService) List(ctx context.Context, status, specialization string, page, limit int) ([]domain.Trainer, int64, error) {
	filter := repository.TrainerFilter{
		Status:         status,
		Specialization: specialization,
	}
	return s.trainerRepo.List(ctx, filter, page, limit)
}

// GetByID returns a single trainer by its generated identifier.
func (s *trainerService) GetByID(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

// Update applies a partial trainer update. The existence check keeps the
// not-found answer consistent with the update result.
func (s *trainerService) Update(ctx context.Context, trainerID string, patch *domain.TrainerPatch) error {
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}

	err := s.trainerRepo.Update(ctx, trainerID, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTrainerNotFound
	}
	if err != nil && isDuplicateKey(err) {
		return ErrTrainerExists
	}
	return err
}

// SoftDelete flips the trainer status to "deleted"; the document stays
// retrievable by id.
func (s *trainerService) SoftDelete(ctx context.Context, trainerID string) error {
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}

	err := s.trainerRepo.SoftDelete(ctx, trainerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTrainerNotFound
	}
	return err
}

// HardDelete removes the trainer document permanently.
func (s *trainerService) HardDelete(ctx context.Context, trainerID string) error {
	err := s.trainerRepo.Delete(ctx, trainerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTrainerNotFound
	}
	return err
}

// BySpecialization lists active trainers of one primary specialization.
func (s *trainerService) BySpecialization(ctx context.Context, specialization string, page, limit int) ([]domain.Trainer, int64, error) {
	filter := repository.TrainerFilter{
		Status:         domain.StatusActive,
		Specialization: specialization,
	}
	return s.trainerRepo.List(ctx, filter, page, limit)
}

// Search runs the multi-criteria trainer search, always restricted to
// active trainers.
func (s *trainerService) Search(ctx context.Context, filter repository.TrainerFilter, page, limit int) ([]domain.Trainer, int64, error) {
	filter.Status = domain.StatusActive
	return s.trainerRepo.List(ctx, filter, page, limit)
}
