package service

import (
	"context"
	"errors"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrGymExists   = errors.New("Gym with this name already exists.")
	ErrGymNotFound = errors.New("gym not found.")
)

// --- Service Interface ---
type GymService interface {
	Create(ctx context.Context, gym *domain.Gym) (*domain.Gym, error)
	GetAll(ctx context.Context) ([]domain.Gym, error)
	Update(ctx context.Context, gymID string, patch *domain.GymPatch) error
	Delete(ctx context.Context, gymID string) error
}

// --- Service Implementation ---

type gymService struct {
	gymRepo repository.GymRepository
}

// NewGymService creates a new instance of gymService.
func NewGymService(gymRepo repository.GymRepository) GymService {
	return &gymService{gymRepo: gymRepo}
}

// Create stores a new gym. The name pre-check is advisory; the unique index
// is authoritative, and a racing duplicate insert maps to the same conflict.
func (s *gymService) Create(ctx context.Context, gym *domain.Gym) (*domain.Gym, error) {
	if gym.GymName == "" {
		return nil, ErrMissingFields
	}

	_, err := s.gymRepo.GetByName(ctx, gym.GymName)
	if err == nil {
		return nil, ErrGymExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.gymRepo.Create(ctx, gym); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrGymExists
		}
		return nil, err
	}
	return gym, nil
}

// GetAll returns every gym.
func (s *gymService) GetAll(ctx context.Context) ([]domain.Gym, error) {
	return s.gymRepo.GetAll(ctx)
}

// Update applies a partial gym update.
func (s *gymService) Update(ctx context.Context, gymID string, patch *domain.GymPatch) error {
	err := s.gymRepo.Update(ctx, gymID, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGymNotFound
	}
	if err != nil && isDuplicateKey(err) {
		return ErrGymExists
	}
	return err
}

// Delete removes a gym permanently.
func (s *gymService) Delete(ctx context.Context, gymID string) error {
	err := s.gymRepo.Delete(ctx, gymID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGymNotFound
	}
	return err
}
