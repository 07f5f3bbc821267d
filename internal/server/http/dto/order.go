package dto

import "github.com/ndavydov/storefront/internal/domain/model"

// Payment actions the view may offer for an order. Terminal or unknown
// statuses offer nothing.
const (
	ActionCreatePayment = "createPayment"
	ActionCancelPayment = "cancelPayment"
	ActionCancelOrder   = "cancelOrder"
)

// OrderView is an order merged with its reduced payment status and the
// actions currently offered for it.
type OrderView struct {
	model.Order
	PaymentStatus string   `json:"paymentStatus,omitempty"`
	Actions       []string `json:"actions"`
}

// OrdersResponse wraps the order history listing.
type OrdersResponse struct {
	Orders []OrderView `json:"orders"`
}

// CreatePaymentRequest names the order to open a payment for.
type CreatePaymentRequest struct {
	OrderID string `json:"order_id"`
}

// CreatePaymentResponse returns the URL the browser must follow.
type CreatePaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// PaymentStatusResponse reports one order's reduced status.
type PaymentStatusResponse struct {
	Status string `json:"status"`
}
