package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndavydov/storefront/internal/domain/model"
	"github.com/ndavydov/storefront/internal/server/http/dto"
)

// OrderHandler serves order history and the payment lifecycle.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/order. Each order carries its reduced payment
// status and the actions currently offered for it.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.OrdersWithStatus(c.Request.Context(), currentToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]dto.OrderView, 0, len(orders))
	for _, order := range orders {
		status := h.facade.StatusOf(order.OrderID)
		views = append(views, dto.OrderView{
			Order:         order,
			PaymentStatus: string(status),
			Actions:       actionsFor(status),
		})
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Orders: views})
}

// Place handles POST /api/order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req model.PlaceOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed order"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order has no items"})
		return
	}

	if err := h.facade.PlaceOrder(c.Request.Context(), currentToken(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Cancel handles POST /api/order/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID := c.Param("id")
	if err := h.facade.CancelOrder(c.Request.Context(), currentToken(c), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentStatusResponse{Status: string(h.facade.StatusOf(orderID))})
}

// CreatePayment handles POST /api/payment.
func (h *OrderHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id is required"})
		return
	}

	paymentURL, err := h.facade.CreatePayment(c.Request.Context(), currentToken(c), req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CreatePaymentResponse{PaymentURL: paymentURL})
}

// Status handles GET /api/payment/:id/status.
func (h *OrderHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PaymentStatusResponse{
		Status: string(h.facade.StatusOf(c.Param("id"))),
	})
}

// CancelPayment handles POST /api/payment/:id/cancel. The new status is
// reported back so the caller can render it without another round trip.
func (h *OrderHandler) CancelPayment(c *gin.Context) {
	orderID := c.Param("id")
	if err := h.facade.CancelPayment(c.Request.Context(), currentToken(c), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentStatusResponse{Status: string(h.facade.StatusOf(orderID))})
}

func actionsFor(status model.PaymentStatus) []string {
	switch status {
	case model.PaymentStatusUncreated:
		return []string{dto.ActionCreatePayment, dto.ActionCancelOrder}
	case model.PaymentStatusCreated, model.PaymentStatusPaying:
		return []string{dto.ActionCancelPayment, dto.ActionCancelOrder}
	default:
		return []string{}
	}
}
