package models

import "time"

// MovementType classifies an inventory entry: IN increases stock,
// OUT decreases it.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// InventoryEntry is one immutable record of a stock movement. Entries
// are append-only: nothing updates or deletes them except the cascade
// when their product is removed.
type InventoryEntry struct {
	ID        string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string       `json:"product_id" gorm:"type:varchar(36);index;not null" validate:"required,uuid"`
	Product   *Product     `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Type      MovementType `json:"type" gorm:"type:varchar(8);not null" validate:"required,oneof=IN OUT"`
	Quantity  int          `json:"quantity" gorm:"not null" validate:"required,gt=0"`
	Note      string       `json:"note" gorm:"type:text"`
	CreatedAt time.Time    `json:"created_at"`
}
