package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// Append inserts one ledger entry and refreshes the product's cached
// stock inside a single transaction. Validation order: product exists,
// then movement type, then OUT sufficiency against the current fold.
func (r *GORMInventoryRepository) Append(entry *models.InventoryEntry) (int, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	var newStock int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", entry.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %s: %w", entry.ProductID, models.ErrNotFound)
			}
			return fmt.Errorf("failed to get product %s: %w", entry.ProductID, err)
		}

		current, err := sumLedger(tx, entry.ProductID)
		if err != nil {
			return err
		}

		switch entry.Type {
		case models.MovementIn:
			newStock = current + entry.Quantity
		case models.MovementOut:
			if current < entry.Quantity {
				return fmt.Errorf("product %s has %d in stock, cannot remove %d: %w",
					entry.ProductID, current, entry.Quantity, models.ErrInsufficientStock)
			}
			newStock = current - entry.Quantity
		default:
			return fmt.Errorf("movement type %q: %w", entry.Type, models.ErrInvalidArgument)
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append inventory entry: %w", err)
		}
		// Refresh the read cache. No other code path writes this column.
		if err := tx.Model(&models.Product{}).Where("id = ?", entry.ProductID).
			UpdateColumn("stock", newStock).Error; err != nil {
			return fmt.Errorf("failed to refresh stock of product %s: %w", entry.ProductID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

// GetAll retrieves all ledger entries, newest first.
func (r *GORMInventoryRepository) GetAll() ([]models.InventoryEntry, error) {
	var entries []models.InventoryEntry
	if err := r.db.Preload("Product").Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get all inventory entries: %w", err)
	}
	return entries, nil
}

// GetByID retrieves a single ledger entry by its ID.
func (r *GORMInventoryRepository) GetByID(id string) (*models.InventoryEntry, error) {
	var entry models.InventoryEntry
	if err := r.db.Preload("Product").First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory entry with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inventory entry by ID %s: %w", id, err)
	}
	return &entry, nil
}

// ListByProduct retrieves a product's ledger entries, newest first.
func (r *GORMInventoryRepository) ListByProduct(productID string) ([]models.InventoryEntry, error) {
	var entries []models.InventoryEntry
	if err := r.db.Where("product_id = ?", productID).Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory entries of product %s: %w", productID, err)
	}
	return entries, nil
}

// SumByProduct folds the product's ledger in SQL.
func (r *GORMInventoryRepository) SumByProduct(productID string) (int, error) {
	return sumLedger(r.db, productID)
}

func sumLedger(tx *gorm.DB, productID string) (int, error) {
	var total int64
	err := tx.Model(&models.InventoryEntry{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN quantity ELSE -quantity END), 0)", models.MovementIn).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum ledger of product %s: %w", productID, err)
	}
	return int(total), nil
}
