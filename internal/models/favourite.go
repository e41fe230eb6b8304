package models

import (
	"time"
)

// Favourite marks a product a user wants to find again. One row per
// (user, product) pair; Category records which product line it lives in so
// the row resolves against the inventory without probing.
type Favourite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favourites_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_favourites_user_product" json:"product_id"`
	Category  Category  `gorm:"size:20;not null" json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
