package backend

import (
	"context"
	"net/http"

	"github.com/ndavydov/storefront/internal/domain/model"
)

type cartResponse struct {
	Items []model.CartItem `json:"items"`
}

// Cart fetches the caller's cart contents.
func (c *Client) Cart(ctx context.Context, token string) ([]model.CartItem, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

type editCartRequest struct {
	Items []model.CartChange `json:"items"`
}

// EditCart applies quantity changes; quantity zero removes the line.
func (c *Client) EditCart(ctx context.Context, token string, changes []model.CartChange) error {
	return c.do(ctx, http.MethodPost, "/cart/edit", token, editCartRequest{Items: changes}, nil)
}

// CheckoutCart converts the whole cart into an order in one step.
func (c *Client) CheckoutCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/cart/checkout", token, nil, nil)
}
