package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"grocery-backoffice/internal/models"
	"grocery-backoffice/internal/repository"

	"gorm.io/gorm"
)

// DefaultRejectionReason is stamped when a reviewer rejects without giving
// one.
const DefaultRejectionReason = "Payment verification failed"

// PaymentService is the payment review state machine plus delivery
// completion. PAYMENT_REVIEW transitions to PLACED on approve and CANCELLED
// on reject; nothing else moves an order out of review.
type PaymentService interface {
	Approve(orderID, reviewerID uint) (*models.Order, error)
	Reject(orderID, reviewerID uint, reason string) (*models.Order, error)
	MarkDelivered(orderID, employeeID uint) (*models.Order, error)
	PendingReview() ([]models.Order, error)
}

type paymentService struct {
	directory repository.DirectoryRepository
	orders    repository.OrderRepository
	assigner  DeliveryAssigner
	events    EventPublisher
}

// NewPaymentService wires the review state machine.
func NewPaymentService(
	directory repository.DirectoryRepository,
	orders repository.OrderRepository,
	assigner DeliveryAssigner,
	events EventPublisher,
) PaymentService {
	return &paymentService{
		directory: directory,
		orders:    orders,
		assigner:  assigner,
		events:    events,
	}
}

func (s *paymentService) reviewer(reviewerID uint) (*models.Employee, error) {
	employee, err := s.directory.FindEmployeeByID(reviewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to resolve reviewer %d: %w", reviewerID, err)
	}
	if !employee.Role.IsPaymentHandler() {
		return nil, ErrNotPaymentHandler
	}
	return employee, nil
}

func (s *paymentService) orderInReview(orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status != models.OrderPaymentReview {
		return nil, ErrInvalidState
	}
	return order, nil
}

// Approve moves a bank order from PAYMENT_REVIEW to PLACED, stamps the
// reviewer, and assigns a delivery employee.
func (s *paymentService) Approve(orderID, reviewerID uint) (*models.Order, error) {
	employee, err := s.reviewer(reviewerID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderInReview(orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.PaymentStatus = models.PaymentApproved
	order.Status = models.OrderPlaced
	order.PaymentHandlerID = &employee.ID
	order.ApprovedBy = &employee.ID
	order.ApprovedAt = &now

	assigned, err := s.assigner.Assign()
	if err != nil {
		return nil, fmt.Errorf("failed to pick a delivery employee: %w", err)
	}
	if assigned != nil {
		order.DeliveryEmployeeID = &assigned.ID
		order.DeliveryEmployee = assigned
	}

	if err := s.orders.Save(order); err != nil {
		return nil, fmt.Errorf("failed to save approved order: %w", err)
	}

	if err := s.events.PublishOrderEvent(EventPaymentApproved, order); err != nil {
		log.Printf("Order %d approved but event publish failed: %v", order.ID, err)
	}
	return order, nil
}

// Reject moves a bank order from PAYMENT_REVIEW to CANCELLED. No delivery
// employee is ever assigned on this path.
func (s *paymentService) Reject(orderID, reviewerID uint, reason string) (*models.Order, error) {
	employee, err := s.reviewer(reviewerID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderInReview(orderID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(reason) == "" {
		reason = DefaultRejectionReason
	}

	now := time.Now()
	order.PaymentStatus = models.PaymentRejected
	order.Status = models.OrderCancelled
	order.PaymentHandlerID = &employee.ID
	order.RejectedBy = &employee.ID
	order.RejectionReason = reason
	order.RejectedAt = &now

	if err := s.orders.Save(order); err != nil {
		return nil, fmt.Errorf("failed to save rejected order: %w", err)
	}

	if err := s.events.PublishOrderEvent(EventPaymentRejected, order); err != nil {
		log.Printf("Order %d rejected but event publish failed: %v", order.ID, err)
	}
	return order, nil
}

// MarkDelivered closes out a PLACED order. Only the assigned delivery
// employee may do it.
func (s *paymentService) MarkDelivered(orderID, employeeID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.DeliveryEmployeeID == nil || *order.DeliveryEmployeeID != employeeID {
		return nil, ErrNotAssigned
	}
	if order.Status == models.OrderDelivered {
		return nil, ErrAlreadyDelivered
	}
	if order.Status != models.OrderPlaced {
		return nil, ErrNotDeliverable
	}

	order.Status = models.OrderDelivered
	if err := s.orders.Save(order); err != nil {
		return nil, fmt.Errorf("failed to save delivered order: %w", err)
	}

	if err := s.events.PublishOrderEvent(EventOrderDelivered, order); err != nil {
		log.Printf("Order %d delivered but event publish failed: %v", order.ID, err)
	}
	return order, nil
}

func (s *paymentService) PendingReview() ([]models.Order, error) {
	return s.orders.FindPendingReview()
}
