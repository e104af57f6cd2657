package services

import (
	"fmt"
	"log"
	"sync"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/rabbitmq"
)

// DefaultLowStockThreshold is the stock level below which a product is
// classified as low-stock unless the caller supplies its own threshold.
const DefaultLowStockThreshold = 10

// AppendRequest carries one stock movement to record.
type AppendRequest struct {
	ProductID string              `json:"product_id" validate:"required"`
	Type      models.MovementType `json:"type" validate:"required"`
	Quantity  int                 `json:"quantity" validate:"required"`
	Note      string              `json:"note"`
}

// InventoryService records stock movements and derives stock levels.
// The ledger is its single source of truth: nothing else may write a
// product's stock.
type InventoryService struct {
	invRepo     repositories.InventoryRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
	threshold   int

	// Appends for the same product are serialized so two concurrent
	// OUT requests cannot both validate against a stale aggregate.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewInventoryService creates a new InventoryService. A non-positive
// lowStockThreshold falls back to DefaultLowStockThreshold; mqClient
// may be nil, in which case no events are published.
func NewInventoryService(invRepo repositories.InventoryRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client, lowStockThreshold int) *InventoryService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &InventoryService{
		invRepo:     invRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
		threshold:   lowStockThreshold,
		locks:       make(map[string]*sync.Mutex),
	}
}

// Append records one immutable stock movement and returns the created
// entry together with the product's new aggregate stock.
//
// Validation order: the product must exist (NotFound), the quantity
// must be positive (InvalidArgument), the type must be IN or OUT
// (InvalidArgument), and an OUT movement must not drive the aggregate
// below zero (InsufficientStock). Appends are not idempotent; callers
// must not blindly retry on ambiguous failure.
func (s *InventoryService) Append(actorID string, req AppendRequest) (*models.InventoryEntry, int, error) {
	if _, err := s.productRepo.GetByID(req.ProductID); err != nil {
		return nil, 0, err
	}
	if req.Quantity <= 0 {
		return nil, 0, fmt.Errorf("quantity must be positive, got %d: %w", req.Quantity, models.ErrInvalidArgument)
	}
	if !req.Type.Valid() {
		return nil, 0, fmt.Errorf("movement type %q: %w", req.Type, models.ErrInvalidArgument)
	}

	lock := s.productLock(req.ProductID)
	lock.Lock()
	defer lock.Unlock()

	entry := &models.InventoryEntry{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Note:      req.Note,
	}
	newStock, err := s.invRepo.Append(entry)
	if err != nil {
		return nil, 0, err
	}

	s.publishMovement(actorID, entry, newStock)

	return entry, newStock, nil
}

// CurrentStock folds the product's ledger: sum of IN minus sum of OUT.
func (s *InventoryService) CurrentStock(productID string) (int, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return 0, err
	}
	return s.invRepo.SumByProduct(productID)
}

// LowStock reports whether the product's aggregate stock is below the
// configured threshold.
func (s *InventoryService) LowStock(productID string) (bool, error) {
	stock, err := s.CurrentStock(productID)
	if err != nil {
		return false, err
	}
	return stock < s.threshold, nil
}

// LowStockThreshold returns the configured low-stock threshold.
func (s *InventoryService) LowStockThreshold() int {
	return s.threshold
}

// EntriesForProduct retrieves a product's ledger entries, newest first.
func (s *InventoryService) EntriesForProduct(productID string) ([]models.InventoryEntry, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	return s.invRepo.ListByProduct(productID)
}

// AllEntries retrieves all ledger entries, newest first.
func (s *InventoryService) AllEntries() ([]models.InventoryEntry, error) {
	return s.invRepo.GetAll()
}

// GetEntry retrieves a single ledger entry by its ID.
func (s *InventoryService) GetEntry(id string) (*models.InventoryEntry, error) {
	return s.invRepo.GetByID(id)
}

func (s *InventoryService) productLock(productID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[productID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[productID] = lock
	}
	return lock
}

// publishMovement notifies downstream consumers of a committed append.
// Publish failures are logged, never rolled back: the ledger entry is
// already durable.
func (s *InventoryService) publishMovement(actorID string, entry *models.InventoryEntry, newStock int) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping stock movement publication.")
		return
	}

	movement := map[string]interface{}{
		"entryID":   entry.ID,
		"productID": entry.ProductID,
		"type":      entry.Type,
		"quantity":  entry.Quantity,
		"stock":     newStock,
		"actorID":   actorID,
	}
	if err := s.mqClient.PublishStockMovement(movement); err != nil {
		log.Printf("Warning: Failed to publish stock movement for entry %s: %v", entry.ID, err)
	}
}
