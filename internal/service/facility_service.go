package service

import (
	"context"
	"errors"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrFacilityExists   = errors.New("Facility with this name already exists.")
	ErrFacilityNotFound = errors.New("facility not found.")
)

// --- Service Interface ---
type FacilityService interface {
	Create(ctx context.Context, name string) (*domain.Facility, error)
	GetAll(ctx context.Context) ([]domain.Facility, error)
	Update(ctx context.Context, facilityID, name string) error
	Delete(ctx context.Context, facilityID string) error
}

// --- Service Implementation ---

type facilityService struct {
	facilityRepo repository.FacilityRepository
}

// NewFacilityService creates a new instance of facilityService.
func NewFacilityService(facilityRepo repository.FacilityRepository) FacilityService {
	return &facilityService{facilityRepo: facilityRepo}
}

// Create stores a new facility. An existing facility with the same name is
// reported as a conflict whether the pre-check or the unique index catches
// it.
func (s *facilityService) Create(ctx context.Context, name string) (*domain.Facility, error) {
	if name == "" {
		return nil, ErrMissingFields
	}

	_, err := s.facilityRepo.GetByName(ctx, name)
	if err == nil {
		return nil, ErrFacilityExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	facility := &domain.Facility{FacilityName: name}
	if _, err := s.facilityRepo.Create(ctx, facility); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrFacilityExists
		}
		return nil, err
	}
	return facility, nil
}

// GetAll returns every facility.
func (s *facilityService) GetAll(ctx context.Context) ([]domain.Facility, error) {
	return s.facilityRepo.GetAll(ctx)
}

// Update renames a facility.
func (s *facilityService) Update(ctx context.Context, facilityID, name string) error {
	if name == "" {
		return ErrMissingFields
	}
	err := s.facilityRepo.UpdateName(ctx, facilityID, name)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFacilityNotFound
	}
	return err
}

// Delete removes a facility permanently.
func (s *facilityService) Delete(ctx context.Context, facilityID string) error {
	err := s.facilityRepo.Delete(ctx, facilityID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFacilityNotFound
	}
	return err
}
