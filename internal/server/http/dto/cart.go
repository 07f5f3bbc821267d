package dto

import "github.com/ndavydov/storefront/internal/domain/model"

// CartResponse wraps the cart listing.
type CartResponse struct {
	Items []model.CartItem `json:"items"`
}

// EditCartRequest applies quantity changes to cart lines.
type EditCartRequest struct {
	Items []model.CartChange `json:"items"`
}
