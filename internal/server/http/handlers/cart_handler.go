package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndavydov/storefront/internal/server/http/dto"
)

// CartHandler serves the shopping cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/cart.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.facade.Cart(c.Request.Context(), currentToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Items: items})
}

// Edit handles POST /api/cart/edit. Quantity zero removes a line.
func (h *CartHandler) Edit(c *gin.Context) {
	var req dto.EditCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no cart changes supplied"})
		return
	}
	for _, change := range req.Items {
		if change.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
			return
		}
	}

	if err := h.facade.EditCart(c.Request.Context(), currentToken(c), req.Items); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Checkout handles POST /api/cart/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	if err := h.facade.CheckoutCart(c.Request.Context(), currentToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
