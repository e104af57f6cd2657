package repositories

import (
	"gudang/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	// Delete removes a category together with its products and their
	// inventory entries, in one transaction.
	Delete(id string) error
}
