package repositories

import (
	"gudang/internal/models"
)

// InventoryRepository defines the interface for the append-only
// inventory ledger.
type InventoryRepository interface {
	// Append validates and inserts one immutable entry, refreshes the
	// product's cached stock, and returns the new aggregate. The read,
	// validation and insert happen inside one transaction so an OUT
	// entry can never drive the aggregate negative.
	Append(entry *models.InventoryEntry) (newStock int, err error)
	GetAll() ([]models.InventoryEntry, error)
	GetByID(id string) (*models.InventoryEntry, error)
	ListByProduct(productID string) ([]models.InventoryEntry, error)
	// SumByProduct folds the product's ledger: sum of IN quantities
	// minus sum of OUT quantities, 0 for an empty ledger.
	SumByProduct(productID string) (int, error)
}
