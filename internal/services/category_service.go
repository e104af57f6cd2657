package services

import (
	"errors"
	"fmt"
	"strings"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category with a unique name.
func (s *CategoryService) CreateCategory(actorID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name must not be empty: %w", models.ErrInvalidArgument)
	}
	if err := s.ensureNameFree(name, ""); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// RenameCategory changes a category's name, keeping names unique.
func (s *CategoryService) RenameCategory(actorID, id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name must not be empty: %w", models.ErrInvalidArgument)
	}

	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(name, id); err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category, its products and their ledger entries.
func (s *CategoryService) DeleteCategory(actorID, id string) error {
	return s.repo.Delete(id)
}

func (s *CategoryService) ensureNameFree(name, selfID string) error {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("category named %q already exists: %w", name, models.ErrConflict)
	}
	return nil
}
