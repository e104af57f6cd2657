package services

import (
	"fmt"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/validator"

	"github.com/shopspring/decimal"
)

// ProductRequest carries the caller-editable fields of a product.
// Stock is deliberately absent: it is derived from the inventory
// ledger and cannot be set through the product paths.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=255"`
	CategoryID  string           `json:"category_id" validate:"required"`
	Price       *decimal.Decimal `json:"price"`
	Size        string           `json:"size" validate:"omitempty,max=50"`
	Color       string           `json:"color" validate:"omitempty,max=50"`
	Attachments []string         `json:"attachments" validate:"max=5"`
	Description string           `json:"description" validate:"omitempty,max=2000"`
	IsActive    *bool            `json:"is_active"`
}

// BulkActiveResult reports the outcome of one record in a bulk
// activate/deactivate call.
type BulkActiveResult struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
	Error   string `json:"error,omitempty"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts retrieves products matching the filter.
func (s *ProductService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	if filter.LowStockThreshold != nil && *filter.LowStockThreshold <= 0 {
		return nil, fmt.Errorf("low stock threshold must be positive, got %d: %w",
			*filter.LowStockThreshold, models.ErrInvalidArgument)
	}
	return s.repo.List(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product in an existing category. Its
// stock always starts at zero; movements go through the inventory ledger.
func (s *ProductService) CreateProduct(actorID string, req ProductRequest) (*models.Product, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       normalizePrice(req.Price),
		Stock:       0,
		Size:        req.Size,
		Color:       req.Color,
		Attachments: models.Attachments(req.Attachments),
		Description: req.Description,
		IsActive:    isActive,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates a product's editable fields. A caller-supplied
// stock value has no field to land in, and the repository omits the
// column besides, so the cached aggregate survives any update.
func (s *ProductService) UpdateProduct(actorID, id string, req ProductRequest) (*models.Product, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != product.CategoryID {
		if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
			return nil, err
		}
	}

	product.Name = req.Name
	product.CategoryID = req.CategoryID
	product.Category = nil
	product.Price = normalizePrice(req.Price)
	product.Size = req.Size
	product.Color = req.Color
	product.Attachments = models.Attachments(req.Attachments)
	product.Description = req.Description
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product and its ledger entries.
func (s *ProductService) DeleteProduct(actorID, id string) error {
	return s.repo.Delete(id)
}

// BulkSetActive toggles is_active on each listed product independently:
// one record failing never affects the others, and the ledger is never
// touched.
func (s *ProductService) BulkSetActive(actorID string, ids []string, active bool) []BulkActiveResult {
	results := make([]BulkActiveResult, 0, len(ids))
	for _, id := range ids {
		result := BulkActiveResult{ID: id, Updated: true}
		if err := s.repo.SetActive(id, active); err != nil {
			result.Updated = false
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}

func (s *ProductService) validate(req ProductRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		e := errs[0]
		return fmt.Errorf("field %s failed on %q: %w", e.FailedField, e.Tag, models.ErrInvalidArgument)
	}
	if req.Price != nil && req.Price.IsNegative() {
		return fmt.Errorf("price must not be negative, got %s: %w", req.Price, models.ErrInvalidArgument)
	}
	return nil
}

// normalizePrice rounds an optional price to the 2-digit precision the
// column stores.
func normalizePrice(price *decimal.Decimal) *decimal.Decimal {
	if price == nil {
		return nil
	}
	rounded := price.Round(2)
	return &rounded
}
