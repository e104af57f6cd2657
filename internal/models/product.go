package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAttachments is the maximum number of image references a product may carry.
const MaxAttachments = 5

// Attachments is an ordered list of image references, stored as a JSON
// text column.
type Attachments []string

// Value implements driver.Valuer.
func (a Attachments) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachments: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *Attachments) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("cannot scan %T into Attachments", value)
	}
}

// Product represents a catalog item.
//
// Stock is a read cache of the product's inventory ledger: it is never
// accepted from callers and only the inventory append transaction
// refreshes it. Everything else is freely editable by an administrator.
type Product struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string           `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	CategoryID  string           `json:"category_id" gorm:"type:varchar(36);index;not null" validate:"required,uuid"`
	Category    *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Price       *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock       int              `json:"stock" gorm:"not null;default:0"`
	Size        string           `json:"size" gorm:"type:varchar(50)"`
	Color       string           `json:"color" gorm:"type:varchar(50)"`
	Attachments Attachments      `json:"attachments" gorm:"type:text" validate:"max=5"`
	Description string           `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
