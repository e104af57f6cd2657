package models

import "time"

// Category is a named grouping for products. Names are unique across
// all categories; deleting a category cascades to its products and
// their inventory entries.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,min=1,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
