package handler

import (
	"net/http"

	"grocery-backoffice/internal/middleware"
	"grocery-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentReviewHandler is the header-authenticated sibling of the legacy
// order approval routes: the acting Payment Handler always comes from the
// resolved principal, never from the body.
type PaymentReviewHandler struct {
	Payments service.PaymentService
}

func (h *PaymentReviewHandler) Pending(c *gin.Context) {
	orders, err := h.Payments.PendingReview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending payments"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *PaymentReviewHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	principal := middleware.GetPrincipal(c)

	order, err := h.Payments.Approve(id, principal.ID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	deliveryEmployee := "None"
	if order.DeliveryEmployee != nil {
		deliveryEmployee = order.DeliveryEmployee.Name
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Payment approved successfully",
		"orderId":          order.ID,
		"status":           order.Status,
		"deliveryEmployee": deliveryEmployee,
	})
}

func (h *PaymentReviewHandler) Reject(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	principal := middleware.GetPrincipal(c)

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req) // body optional, blank reason gets the default

	order, err := h.Payments.Reject(id, principal.ID, req.Reason)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment rejected",
		"orderId": order.ID,
		"status":  order.Status,
		"reason":  order.RejectionReason,
	})
}
