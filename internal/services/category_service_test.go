package services_test

import (
	"fmt"
	"testing"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(categoryRepo)

	categoryRepo.On("GetByName", "Beverages").
		Return(nil, fmt.Errorf("category named %q: %w", "Beverages", models.ErrNotFound)).Once()
	categoryRepo.On("Create", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	category, err := service.CreateCategory("admin-1", "Beverages")
	assert.NoError(t, err)
	assert.Equal(t, "Beverages", category.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(categoryRepo)

	categoryRepo.On("GetByName", "Beverages").
		Return(&models.Category{ID: "cat-1", Name: "Beverages"}, nil).Once()

	category, err := service.CreateCategory("admin-1", "Beverages")
	assert.Nil(t, category)
	assert.ErrorIs(t, err, models.ErrConflict)
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCategoryService_CreateCategory_EmptyName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(categoryRepo)

	_, err := service.CreateCategory("admin-1", "   ")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCategoryService_RenameCategory(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(categoryRepo)

	existing := &models.Category{ID: "cat-1", Name: "Beverages"}
	categoryRepo.On("GetByID", "cat-1").Return(existing, nil).Once()
	categoryRepo.On("GetByName", "Drinks").
		Return(nil, fmt.Errorf("category named %q: %w", "Drinks", models.ErrNotFound)).Once()
	categoryRepo.On("Update", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	category, err := service.RenameCategory("admin-1", "cat-1", "Drinks")
	assert.NoError(t, err)
	assert.Equal(t, "Drinks", category.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_RenameCategory_TakenName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(categoryRepo)

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1", Name: "Beverages"}, nil).Once()
	categoryRepo.On("GetByName", "Snacks").Return(&models.Category{ID: "cat-2", Name: "Snacks"}, nil).Once()

	_, err := service.RenameCategory("admin-1", "cat-1", "Snacks")
	assert.ErrorIs(t, err, models.ErrConflict)
	categoryRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestCategoryService_RenameCategory_SameName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(categoryRepo)

	existing := &models.Category{ID: "cat-1", Name: "Beverages"}
	categoryRepo.On("GetByID", "cat-1").Return(existing, nil).Once()
	categoryRepo.On("GetByName", "Beverages").Return(existing, nil).Once()
	categoryRepo.On("Update", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	// Renaming a category to its own name is not a conflict.
	category, err := service.RenameCategory("admin-1", "cat-1", "Beverages")
	assert.NoError(t, err)
	assert.Equal(t, "Beverages", category.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(categoryRepo)

	categoryRepo.On("Delete", "cat-1").Return(nil).Once()
	assert.NoError(t, service.DeleteCategory("admin-1", "cat-1"))

	categoryRepo.On("Delete", "missing").
		Return(fmt.Errorf("category with ID missing: %w", models.ErrNotFound)).Once()
	assert.ErrorIs(t, service.DeleteCategory("admin-1", "missing"), models.ErrNotFound)
	categoryRepo.AssertExpectations(t)
}
