package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns whitelists the sortable product listing columns.
var sortColumns = map[string]string{
	"name":       "products.name",
	"price":      "products.price",
	"stock":      "products.stock",
	"created_at": "products.created_at",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves products matching the filter, with their category
// preloaded. The default order is newest first.
func (r *GORMProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	q := r.db.Model(&models.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Preload("Category")

	if filter.CategoryID != "" {
		q = q.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.IsActive != nil {
		q = q.Where("products.is_active = ?", *filter.IsActive)
	}
	if filter.LowStockThreshold != nil {
		q = q.Where("products.stock < ?", *filter.LowStockThreshold)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(products.name) LIKE ? OR LOWER(categories.name) LIKE ? OR LOWER(products.description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "products.created_at"
		if filter.SortBy == "" {
			// Newest first when no sort is requested.
			filter.SortDesc = true
		}
	}
	direction := "asc"
	if filter.SortDesc {
		direction = "desc"
	}
	q = q.Order(column + " " + direction)

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, with its category preloaded.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product. The stock column is omitted from
// the statement: the inventory ledger is its only writer.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit("stock").Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, models.ErrNotFound)
	}
	return nil
}

// SetActive toggles the is_active flag of a single product. The flag is
// fully independent of stock, so this never touches the ledger.
func (r *GORMProductRepository) SetActive(id string, active bool) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return fmt.Errorf("failed to set is_active on product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// Delete removes a product and its inventory entries in one transaction,
// so no dangling ledger rows survive.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
			}
			return fmt.Errorf("failed to get product for deletion: %w", err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.InventoryEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete inventory entries of product %s: %w", id, err)
		}
		if err := tx.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete product %s: %w", id, err)
		}
		return nil
	})
}
