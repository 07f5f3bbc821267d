package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ndavydov/storefront/internal/domain/model"
)

type createPaymentRequest struct {
	OrderID string `json:"order_id"`
}

type createPaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// CreatePayment asks the backend to open a payment for the order and returns
// the URL the browser must be sent to. No local status transition happens
// here; the next status poll reflects the server's view.
func (c *Client) CreatePayment(ctx context.Context, token, orderID string) (string, error) {
	var resp createPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payment", token, createPaymentRequest{OrderID: orderID}, &resp); err != nil {
		return "", err
	}
	return resp.PaymentURL, nil
}

type paymentStatusResponse struct {
	Status string `json:"status"`
}

// PaymentStatus fetches the payment status of a single order.
func (c *Client) PaymentStatus(ctx context.Context, token, orderID string) (model.PaymentStatus, error) {
	var resp paymentStatusResponse
	route := fmt.Sprintf("/payment/%s/status", url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodPost, route, token, nil, &resp); err != nil {
		return model.PaymentStatusUnknown, err
	}
	return model.ParsePaymentStatus(resp.Status), nil
}

// CancelPayment aborts an open payment for the order.
func (c *Client) CancelPayment(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/payment/%s/cancel", url.PathEscape(orderID)), token, nil, nil)
}
