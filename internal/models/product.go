package models

import (
	"time"
)

// Product is a row in the generic per-category inventory. Rows are never
// hard-deleted; IsActive=false hides them from availability checks while
// historic order items keep referencing them.
type Product struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Category          Category  `gorm:"size:20;index;not null" json:"category"`
	Name              string    `gorm:"size:150;not null" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	Price             float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity          int       `gorm:"default:0" json:"quantity"`
	Image             string    `gorm:"size:255" json:"image"`
	LowStockThreshold int       `gorm:"default:10" json:"low_stock_threshold"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
