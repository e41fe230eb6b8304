package models

import (
	"time"
)

// Order statuses.
const (
	OrderPlaced        = "PLACED"
	OrderPaymentReview = "PAYMENT_REVIEW"
	OrderDelivered     = "DELIVERED"
	OrderCancelled     = "CANCELLED"
)

// Payment methods.
const (
	PaymentMethodCash = "cash"
	PaymentMethodBank = "bank"
)

// Payment statuses.
const (
	PaymentCashOnDelivery = "cash_on_delivery"
	PaymentPending        = "pending"
	PaymentApproved       = "approved"
	PaymentRejected       = "rejected"
)

// Order is the customer order aggregate. Total is fixed at creation time and
// never recomputed; the payment audit fields are only touched by the review
// step.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerID      uint      `json:"customer_id"`
	Customer        User      `gorm:"foreignKey:CustomerID" json:"customer"`
	Status          string    `gorm:"type:enum('PLACED','PAYMENT_REVIEW','DELIVERED','CANCELLED');default:'PLACED'" json:"status"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	DeliveryAddress string    `gorm:"type:text;not null" json:"delivery_address"`
	PaymentMethod   string    `gorm:"type:enum('cash','bank');default:'cash'" json:"payment_method"`
	PaymentStatus   string    `gorm:"type:enum('cash_on_delivery','pending','approved','rejected');default:'cash_on_delivery'" json:"payment_status"`
	PaymentReceipt  string    `gorm:"size:255" json:"payment_receipt,omitempty"`

	DeliveryEmployeeID *uint     `json:"delivery_employee_id"`
	DeliveryEmployee   *Employee `gorm:"foreignKey:DeliveryEmployeeID" json:"delivery_employee,omitempty"`

	PaymentHandlerID *uint      `json:"payment_handler_id"`
	PaymentHandler   *Employee  `gorm:"foreignKey:PaymentHandlerID" json:"payment_handler,omitempty"`
	ApprovedBy       *uint      `json:"approved_by"`
	ApprovedAt       *time.Time `json:"approved_at"`
	RejectedBy       *uint      `json:"rejected_by"`
	RejectionReason  string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at"`

	Total float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem snapshots one cart line. Price is the unit price at order time
// and is immutable afterwards; Category records which inventory the product
// came from so the row stays resolvable even if ids repeat across imports.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `json:"order_id"`
	ProductID uint     `json:"product_id"`
	Category  Category `gorm:"size:20;not null" json:"category"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"type:decimal(10,2);not null" json:"price"`
}
