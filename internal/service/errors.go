package service

import (
	"errors"
	"fmt"
)

// Sentinel errors recovered at the request boundary.
var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("order must contain at least one item")
	ErrNoDeliveryAddress = errors.New("no delivery address found")
	ErrMissingReceipt    = errors.New("payment receipt is required for bank payment")
	ErrNotPaymentHandler = errors.New("only a Payment Handler can review payments")
	ErrInvalidState      = errors.New("order is not pending payment review")
	ErrNotAssigned       = errors.New("employee is not assigned to this order")
	ErrAlreadyDelivered  = errors.New("order is already delivered")
	ErrNotDeliverable    = errors.New("order cannot be marked delivered in its current status")
)

// InvalidCartLineError reports a malformed cart line.
type InvalidCartLineError struct {
	ProductID uint
	Reason    string
}

func (e *InvalidCartLineError) Error() string {
	return fmt.Sprintf("invalid cart line for product %d: %s", e.ProductID, e.Reason)
}

// StockErrorLine describes one cart line that failed the availability check.
type StockErrorLine struct {
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	Requested   int    `json:"requestedQuantity"`
}

// InsufficientStockError carries every failing line, so the caller can show
// one consolidated error instead of discovering them one at a time.
type InsufficientStockError struct {
	Lines []StockErrorLine
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d item(s)", len(e.Lines))
}
