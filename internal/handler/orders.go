package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"grocery-backoffice/internal/middleware"
	"grocery-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders   service.OrderService
	Payments service.PaymentService
	// DefaultReviewerID backs the legacy approve/reject routes whose callers
	// omit employeeId.
	DefaultReviewerID uint
}

type OrderItemRequest struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
}

type PlaceOrderRequest struct {
	CustomerID      uint               `json:"customerId" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	DeliveryAddress string             `json:"delivery_address"`
	UseSavedAddress string             `json:"useSavedAddress"` // "yes" substitutes the saved profile address
	PaymentMethod   string             `json:"paymentMethod"`
	PaymentReceipt  string             `json:"paymentReceipt"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.PlaceOrderInput{
		CustomerID:      req.CustomerID,
		DeliveryAddress: req.DeliveryAddress,
		UseSavedAddress: strings.EqualFold(strings.TrimSpace(req.UseSavedAddress), "yes"),
		PaymentMethod:   req.PaymentMethod,
		PaymentReceipt:  req.PaymentReceipt,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.CartLine{
			ProductID: item.ProductID,
			Category:  item.Category,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	result, err := h.Orders.PlaceOrder(input)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	response := gin.H{
		"message":       "order placed",
		"orderId":       result.OrderID,
		"total":         result.Total,
		"paymentMethod": result.PaymentMethod,
		"status":        result.Status,
	}
	if result.DeliveryEmployee != "" {
		response["deliveryEmployee"] = result.DeliveryEmployee
	}
	c.JSON(http.StatusCreated, response)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.GetOrder(id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Orders.DeleteOrder(id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UserOrders returns a customer's order history including the payment audit
// trail.
func (h *OrderHandler) UserOrders(c *gin.Context) {
	id, ok := parseID(c, "userId")
	if !ok {
		return
	}
	orders, err := h.Orders.OrdersForCustomer(id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// MyDeliveries lists the orders assigned to the calling delivery employee.
func (h *OrderHandler) MyDeliveries(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	orders, err := h.Orders.OrdersForDeliveryEmployee(principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

type reviewRequest struct {
	EmployeeID      *uint  `json:"employeeId"`
	RejectionReason string `json:"rejectionReason"`
	Reason          string `json:"reason"`
}

func (h *OrderHandler) reviewerFromBody(c *gin.Context) (uint, reviewRequest) {
	var req reviewRequest
	// Body is optional on the legacy routes; older callers send nothing.
	_ = c.ShouldBindJSON(&req)
	if req.EmployeeID != nil {
		return *req.EmployeeID, req
	}
	return h.DefaultReviewerID, req
}

// ApprovePayment is the legacy body-authenticated approval route.
func (h *OrderHandler) ApprovePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviewerID, _ := h.reviewerFromBody(c)

	order, err := h.Payments.Approve(id, reviewerID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment approved", "orderId": order.ID})
}

// RejectPayment is the legacy body-authenticated rejection route.
func (h *OrderHandler) RejectPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviewerID, req := h.reviewerFromBody(c)
	reason := req.RejectionReason
	if reason == "" {
		reason = req.Reason
	}

	order, err := h.Payments.Reject(id, reviewerID, reason)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment rejected", "orderId": order.ID})
}

// MarkDelivered lets the assigned delivery employee close out an order.
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	principal := middleware.GetPrincipal(c)

	order, err := h.Payments.MarkDelivered(id, principal.ID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Order marked as delivered successfully",
		"orderId":         order.ID,
		"status":          order.Status,
		"deliveredBy":     principal.ID,
		"deliveredByName": principal.Name,
		"deliveredAt":     time.Now(),
	})
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondOrderError maps workflow errors onto the boundary responses.
func respondOrderError(c *gin.Context, err error) {
	var stockErr *service.InsufficientStockError
	var lineErr *service.InvalidCartLineError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "Insufficient stock for some items",
			"stockErrors": stockErr.Lines,
		})
	case errors.As(err, &lineErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": lineErr.Error()})
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrNoDeliveryAddress),
		errors.Is(err, service.ErrMissingReceipt):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotPaymentHandler),
		errors.Is(err, service.ErrNotAssigned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrAlreadyDelivered),
		errors.Is(err, service.ErrNotDeliverable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
	}
}
