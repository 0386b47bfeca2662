package service

import (
	"context"
	"errors"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrCategoryExists   = errors.New("Category with this name already exists.")
	ErrCategoryNotFound = errors.New("category not found.")
)

// --- Service Interface ---
type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, categoryID, name string) error
	Delete(ctx context.Context, categoryID string) error
}

// --- Service Implementation ---

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of categoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// Create stores a new gym category, reporting duplicates as conflicts.
func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, ErrMissingFields
	}

	_, err := s.categoryRepo.GetByName(ctx, name)
	if err == nil {
		return nil, ErrCategoryExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	category := &domain.Category{CategoryName: name}
	if _, err := s.categoryRepo.Create(ctx, category); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

// GetAll returns every category.
func (s *categoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// Update renames a category.
func (s *categoryService) Update(ctx context.Context, categoryID, name string) error {
	if name == "" {
		return ErrMissingFields
	}
	err := s.categoryRepo.UpdateName(ctx, categoryID, name)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

// Delete removes a category permanently.
func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	err := s.categoryRepo.Delete(ctx, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}
