package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ndavydov/storefront/internal/domain/model"
)

type ordersResponse struct {
	Orders []model.Order `json:"orders"`
}

// Orders lists the caller's order history.
func (c *Client) Orders(ctx context.Context, token string) ([]model.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/order", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// PlaceOrder submits a confirmed checkout with shipping address.
func (c *Client) PlaceOrder(ctx context.Context, token string, order model.PlaceOrder) error {
	return c.do(ctx, http.MethodPost, "/order", token, order, nil)
}

// CancelOrder cancels an order outright.
func (c *Client) CancelOrder(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/order/%s/cancel", url.PathEscape(orderID)), token, nil, nil)
}
