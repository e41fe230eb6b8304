package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"grocery-backoffice/internal/models"
	"grocery-backoffice/internal/repository"

	"gorm.io/gorm"
)

// CartLine is one requested item. Category is mandatory: the old
// cross-table guessing is gone.
type CartLine struct {
	ProductID uint
	Category  string
	Quantity  int
	Price     float64
}

// PlaceOrderInput carries everything the placement workflow needs.
type PlaceOrderInput struct {
	CustomerID      uint
	Items           []CartLine
	DeliveryAddress string
	UseSavedAddress bool
	PaymentMethod   string
	PaymentReceipt  string
}

// PlaceOrderResult is the outcome reported to the caller.
type PlaceOrderResult struct {
	OrderID          uint
	Total            float64
	Status           string
	PaymentMethod    string
	PaymentStatus    string
	DeliveryEmployee string
}

// OrderService owns the order placement workflow and the order read views.
type OrderService interface {
	PlaceOrder(in PlaceOrderInput) (*PlaceOrderResult, error)
	ListOrders() ([]models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	OrdersForCustomer(customerID uint) ([]models.Order, error)
	OrdersForDeliveryEmployee(employeeID uint) ([]models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	products  repository.ProductRepository
	directory repository.DirectoryRepository
	orders    repository.OrderRepository
	assigner  DeliveryAssigner
	events    EventPublisher
}

// NewOrderService wires the placement workflow.
func NewOrderService(
	products repository.ProductRepository,
	directory repository.DirectoryRepository,
	orders repository.OrderRepository,
	assigner DeliveryAssigner,
	events EventPublisher,
) OrderService {
	return &orderService{
		products:  products,
		directory: directory,
		orders:    orders,
		assigner:  assigner,
		events:    events,
	}
}

// PlaceOrder runs the full placement sequence: resolve customer, validate
// the cart, check stock across every line, branch on payment method, then
// persist order and stock decrements as one transaction.
func (s *orderService) PlaceOrder(in PlaceOrderInput) (*PlaceOrderResult, error) {
	customer, err := s.directory.FindUserByID(in.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to resolve customer %d: %w", in.CustomerID, err)
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	deliveryAddress := strings.TrimSpace(in.DeliveryAddress)
	if in.UseSavedAddress {
		deliveryAddress = strings.TrimSpace(customer.Address)
	}
	if deliveryAddress == "" {
		return nil, ErrNoDeliveryAddress
	}

	lines, err := s.validateLines(in.Items)
	if err != nil {
		return nil, err
	}

	if stockErrs, err := s.collectStockErrors(lines); err != nil {
		return nil, err
	} else if len(stockErrs) > 0 {
		return nil, &InsufficientStockError{Lines: stockErrs}
	}

	// Prices are trusted from the caller, not re-derived from the store.
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}

	paymentMethod := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCash
	}

	order := &models.Order{
		CustomerID:      customer.ID,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   paymentMethod,
		Total:           total,
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.productID,
			Category:  line.category,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	var assignedName string
	if paymentMethod == models.PaymentMethodBank {
		if strings.TrimSpace(in.PaymentReceipt) == "" {
			return nil, ErrMissingReceipt
		}
		order.PaymentReceipt = in.PaymentReceipt
		order.Status = models.OrderPaymentReview
		order.PaymentStatus = models.PaymentPending
	} else {
		assigned, err := s.assigner.Assign()
		if err != nil {
			return nil, fmt.Errorf("failed to pick a delivery employee: %w", err)
		}
		order.Status = models.OrderPlaced
		order.PaymentStatus = models.PaymentCashOnDelivery
		if assigned != nil {
			order.DeliveryEmployeeID = &assigned.ID
			assignedName = assigned.Name
		}
	}

	if err := s.orders.Create(order); err != nil {
		if errors.Is(err, repository.ErrStockConflict) {
			// Another placement won the race between validation and commit.
			stockErrs, cerr := s.collectStockErrors(lines)
			if cerr != nil || len(stockErrs) == 0 {
				return nil, &InsufficientStockError{}
			}
			return nil, &InsufficientStockError{Lines: stockErrs}
		}
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := s.events.PublishOrderEvent(EventOrderPlaced, order); err != nil {
		log.Printf("Order %d placed but event publish failed: %v", order.ID, err)
	}

	return &PlaceOrderResult{
		OrderID:          order.ID,
		Total:            total,
		Status:           order.Status,
		PaymentMethod:    paymentMethod,
		PaymentStatus:    order.PaymentStatus,
		DeliveryEmployee: assignedName,
	}, nil
}

type validatedLine struct {
	productID uint
	category  models.Category
	Quantity  int
	Price     float64
}

func (s *orderService) validateLines(items []CartLine) ([]validatedLine, error) {
	lines := make([]validatedLine, 0, len(items))
	for _, item := range items {
		category, ok := models.ParseCategory(item.Category)
		if !ok {
			return nil, &InvalidCartLineError{ProductID: item.ProductID, Reason: "category is required"}
		}
		if item.Quantity <= 0 {
			return nil, &InvalidCartLineError{ProductID: item.ProductID, Reason: "quantity must be positive"}
		}
		if item.Price < 0 {
			return nil, &InvalidCartLineError{ProductID: item.ProductID, Reason: "price cannot be negative"}
		}
		lines = append(lines, validatedLine{
			productID: item.ProductID,
			category:  category,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return lines, nil
}

// collectStockErrors checks every line and reports all failures at once.
func (s *orderService) collectStockErrors(lines []validatedLine) ([]StockErrorLine, error) {
	var stockErrs []StockErrorLine
	for _, line := range lines {
		ok, err := s.products.HasStock(line.category, line.productID, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to check stock for product %d: %w", line.productID, err)
		}
		if ok {
			continue
		}
		name := "Unknown Product"
		if product, err := s.products.FindAvailable(line.category, line.productID); err == nil {
			name = product.Name
		}
		stockErrs = append(stockErrs, StockErrorLine{
			ProductID:   line.productID,
			ProductName: name,
			Requested:   line.Quantity,
		})
	}
	return stockErrs, nil
}

func (s *orderService) ListOrders() ([]models.Order, error) {
	return s.orders.FindAll()
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) OrdersForCustomer(customerID uint) ([]models.Order, error) {
	if _, err := s.directory.FindUserByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return s.orders.FindByCustomer(customerID)
}

func (s *orderService) OrdersForDeliveryEmployee(employeeID uint) ([]models.Order, error) {
	return s.orders.FindByDeliveryEmployee(employeeID)
}

func (s *orderService) DeleteOrder(id uint) error {
	err := s.orders.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}
