package repositories

import (
	"gudang/internal/models"
)

// ProductFilter narrows and orders a product listing. Zero values mean
// "no constraint".
type ProductFilter struct {
	CategoryID        string
	IsActive          *bool
	LowStockThreshold *int
	// Search is a case-insensitive substring match over the product
	// name, its category name and its description.
	Search   string
	SortBy   string
	SortDesc bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	// Update persists every field except the stock column, which only
	// the inventory append transaction may write.
	Update(product *models.Product) error
	SetActive(id string, active bool) error
	// Delete removes a product together with its inventory entries.
	Delete(id string) error
}
