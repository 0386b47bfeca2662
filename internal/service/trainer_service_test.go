package service

import (
	"context"
	"errors"
	"testing"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
)

// fakeTrainerRepository implements repository.TrainerRepository with
// overridable functions per test.
type fakeTrainerRepository struct {
	CreateFunc                     func(ctx context.Context, trainer *domain.Trainer) (string, error)
	GetByIDFunc                    func(ctx context.Context, trainerID string) (*domain.Trainer, error)
	GetByNameAndSpecializationFunc func(ctx context.Context, fullName, specialization string) (*domain.Trainer, error)
	ListFunc                       func(ctx context.Context, filter repository.TrainerFilter, page, limit int) ([]domain.Trainer, int64, error)
	UpdateFunc                     func(ctx context.Context, trainerID string, patch *domain.TrainerPatch) error
	SoftDeleteFunc                 func(ctx context.Context, trainerID string) error
	DeleteFunc                     func(ctx context.Context, trainerID string) error
}

func (f *fakeTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (string, error) {
	return f.CreateFunc(ctx, trainer)
}

func (f *fakeTrainerRepository) GetByID(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	return f.GetByIDFunc(ctx, trainerID)
}

func (f *fakeTrainerRepository) GetByNameAndSpecialization(ctx context.Context, fullName, specialization string) (*domain.Trainer, error) {
	return f.GetByNameAndSpecializationFunc(ctx, fullName, specialization)
}

func (f *fakeTrainerRepository) List(ctx context.Context, filter repository.TrainerFilter, page, limit int) ([]domain.Trainer, int64, error) {
	return f.ListFunc(ctx, filter, page, limit)
}

func (f *fakeTrainerRepository) Update(ctx context.Context, trainerID string, patch *domain.TrainerPatch) error {
	return f.UpdateFunc(ctx, trainerID, patch)
}

func (f *fakeTrainerRepository) SoftDelete(ctx context.Context, trainerID string) error {
	return f.SoftDeleteFunc(ctx, trainerID)
}

func (f *fakeTrainerRepository) Delete(ctx context.Context, trainerID string) error {
	return f.DeleteFunc(ctx, trainerID)
}

func TestTrainerCreate_Success(t *testing.T) {
	repo := &fakeTrainerRepository{
		GetByNameAndSpecializationFunc: func(ctx context.Context, fullName, specialization string) (*domain.Trainer, error) {
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, trainer *domain.Trainer) (string, error) {
			trainer.TrainerID = "trainer-1"
			return "trainer-1", nil
		},
	}
	svc := NewTrainerService(repo)

	trainer, err := svc.Create(context.Background(), &domain.Trainer{
		FullName:              "Alex Rivera",
		PrimarySpecialization: "Yoga",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if trainer.TrainerID != "trainer-1" {
		t.Errorf("unexpected trainer id: %q", trainer.TrainerID)
	}
}

func TestTrainerCreate_MissingFields(t *testing.T) {
	svc := NewTrainerService(&fakeTrainerRepository{})

	_, err := svc.Create(context.Background(), &domain.Trainer{FullName: "Alex Rivera"})

	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestTrainerCreate_DuplicateNameAndSpecialization(t *testing.T) {
	repo := &fakeTrainerRepository{
		GetByNameAndSpecializationFunc: func(ctx context.Context, fullName, specialization string) (*domain.Trainer, error) {
			return &domain.Trainer{FullName: fullName}, nil
		},
	}
	svc := NewTrainerService(repo)

	_, err := svc.Create(context.Background(), &domain.Trainer{
		FullName:              "Alex Rivera",
		PrimarySpecialization: "Yoga",
	})

	if !errors.Is(err, ErrTrainerExists) {
		t.Errorf("expected ErrTrainerExists, got %v", err)
	}
}

func TestTrainerCreate_DuplicateOnInsert(t *testing.T) {
	repo := &fakeTrainerRepository{
		GetByNameAndSpecializationFunc: func(ctx context.Context, fullName, specialization string) (*domain.Trainer, error) {
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, trainer *domain.Trainer) (string, error) {
			return "", errors.New("E11000 duplicate key error")
		},
	}
	svc := NewTrainerService(repo)

	_, err := svc.Create(context.Background(), &domain.Trainer{
		FullName:              "Alex Rivera",
		PrimarySpecialization: "Yoga",
	})

	if !errors.Is(err, ErrTrainerExists) {
		t.Errorf("expected ErrTrainerExists, got %v", err)
	}
}

func TestTrainerSearch_ForcesActiveStatus(t *testing.T) {
	var captured repository.TrainerFilter
	repo := &fakeTrainerRepository{
		ListFunc: func(ctx context.Context, filter repository.TrainerFilter, page, limit int) ([]domain.Trainer, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	svc := NewTrainerService(repo)

	_, _, err := svc.Search(context.Background(), repository.TrainerFilter{
		Status: domain.StatusDeleted,
		Query:  "yoga",
	}, 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.Status != domain.StatusActive {
		t.Errorf("expected search to force active status, got %q", captured.Status)
	}
	if captured.Query != "yoga" {
		t.Errorf("expected query to pass through, got %q", captured.Query)
	}
}

func TestTrainerBySpecialization_ActiveOnly(t *testing.T) {
	var captured repository.TrainerFilter
	repo := &fakeTrainerRepository{
		ListFunc: func(ctx context.Context, filter repository.TrainerFilter, page, limit int) ([]domain.Trainer, int64, error) {
			captured = filter
			return []domain.Trainer{{FullName: "Alex Rivera"}}, 1, nil
		},
	}
	svc := NewTrainerService(repo)

	trainers, total, err := svc.BySpecialization(context.Background(), "Yoga", 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.Status != domain.StatusActive {
		t.Errorf("expected active status filter, got %q", captured.Status)
	}
	if captured.Specialization != "Yoga" {
		t.Errorf("expected specialization filter, got %q", captured.Specialization)
	}
	if total != 1 || len(trainers) != 1 {
		t.Errorf("unexpected result: %d trainers, total %d", len(trainers), total)
	}
}

func TestTrainerSoftDelete_NotFound(t *testing.T) {
	repo := &fakeTrainerRepository{
		GetByIDFunc: func(ctx context.Context, trainerID string) (*domain.Trainer, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewTrainerService(repo)

	err := svc.SoftDelete(context.Background(), "missing")

	if !errors.Is(err, ErrTrainerNotFound) {
		t.Errorf("expected ErrTrainerNotFound, got %v", err)
	}
}

func TestTrainerSoftDelete_Success(t *testing.T) {
	var softDeleted string
	repo := &fakeTrainerRepository{
		GetByIDFunc: func(ctx context.Context, trainerID string) (*domain.Trainer, error) {
			return &domain.Trainer{TrainerID: trainerID, Status: domain.StatusActive}, nil
		},
		SoftDeleteFunc: func(ctx context.Context, trainerID string) error {
			softDeleted = trainerID
			return nil
		},
	}
	svc := NewTrainerService(repo)

	if err := svc.SoftDelete(context.Background(), "trainer-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if softDeleted != "trainer-1" {
		t.Errorf("expected soft delete of trainer-1, got %q", softDeleted)
	}
}

func TestTrainerHardDelete_NotFound(t *testing.T) {
	repo := &fakeTrainerRepository{
		DeleteFunc: func(ctx context.Context, trainerID string) error {
			return repository.ErrNotFound
		},
	}
	svc := NewTrainerService(repo)

	err := svc.HardDelete(context.Background(), "missing")

	if !errors.Is(err, ErrTrainerNotFound) {
		t.Errorf("expected ErrTrainerNotFound, got %v", err)
	}
}

func TestTrainerUpdate_DuplicateMapsToConflict(t *testing.T) {
	repo := &fakeTrainerRepository{
		GetByIDFunc: func(ctx context.Context, trainerID string) (*domain.Trainer, error) {
			return &domain.Trainer{TrainerID: trainerID}, nil
		},
		UpdateFunc: func(ctx context.Context, trainerID string, patch *domain.TrainerPatch) error {
			return repository.ErrConflict
		},
	}
	svc := NewTrainerService(repo)

	err := svc.Update(context.Background(), "trainer-1", &domain.TrainerPatch{})

	if !errors.Is(err, ErrTrainerExists) {
		t.Errorf("expected ErrTrainerExists, got %v", err)
	}
}
