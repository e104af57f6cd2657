package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for the inventory ledger.
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
// The ledger is append-only: there are no update or delete routes.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Get("/", h.HandleGetEntries)
	inventoryRoutes.Post("/", h.HandleAppend)
	inventoryRoutes.Get("/:id", h.HandleGetEntryByID)

	router.Get("/products/:id/stock", h.HandleCurrentStock)
	router.Get("/products/:id/inventory", h.HandleProductEntries)
}

// HandleGetEntries retrieves all ledger entries, newest first.
func (h *InventoryHandler) HandleGetEntries(c *fiber.Ctx) error {
	entries, err := h.service.AllEntries()
	if err != nil {
		log.Printf("Error getting inventory entries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve inventory entries",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}

// HandleGetEntryByID retrieves a single ledger entry.
func (h *InventoryHandler) HandleGetEntryByID(c *fiber.Ctx) error {
	entryID := c.Params("id")
	entry, err := h.service.GetEntry(entryID)
	if err != nil {
		log.Printf("Error getting inventory entry by ID %s: %v", entryID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Could not retrieve inventory entry",
			"error":   err.Error(),
		})
	}
	return c.JSON(entry)
}

// HandleAppend records one stock movement and returns the created
// entry together with the product's new aggregate stock.
func (h *InventoryHandler) HandleAppend(c *fiber.Ctx) error {
	var req services.AppendRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing inventory request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	entry, stock, err := h.service.Append(actorID(c), req)
	if err != nil {
		log.Printf("Error appending inventory entry: %v", err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Could not record stock movement",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"entry": entry,
		"stock": stock,
	})
}

// HandleCurrentStock returns a product's aggregate stock and whether
// it is below the low-stock threshold.
func (h *InventoryHandler) HandleCurrentStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	stock, err := h.service.CurrentStock(productID)
	if err != nil {
		log.Printf("Error getting stock of product %s: %v", productID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Could not retrieve stock",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"product_id": productID,
		"stock":      stock,
		"low_stock":  stock < h.service.LowStockThreshold(),
	})
}

// HandleProductEntries retrieves one product's ledger entries, newest first.
func (h *InventoryHandler) HandleProductEntries(c *fiber.Ctx) error {
	productID := c.Params("id")
	entries, err := h.service.EntriesForProduct(productID)
	if err != nil {
		log.Printf("Error getting inventory entries of product %s: %v", productID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Could not retrieve inventory entries",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}
