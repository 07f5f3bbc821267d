package model

// Address is a shipping address attached to an order.
type Address struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	ZipCode       int32  `json:"zipCode"`
}

// OrderItem is one purchased line together with its total cost.
type OrderItem struct {
	Item CartItem `json:"item"`
	Cost float64  `json:"cost"`
}

// Order mirrors an order record returned by the backend.
type Order struct {
	OrderID      string      `json:"orderId"`
	UserID       int64       `json:"userId"`
	UserCurrency string      `json:"userCurrency"`
	Items        []OrderItem `json:"orderItems"`
	Address      Address     `json:"address"`
	Email        string      `json:"email"`
	CreatedAt    int64       `json:"createdAt"`
}

// PlaceOrder carries the checkout confirmation payload.
type PlaceOrder struct {
	UserCurrency string           `json:"user_currency"`
	Address      PlaceAddress     `json:"address"`
	Email        string           `json:"email"`
	Items        []PlaceOrderItem `json:"order_items"`
}

// PlaceAddress is the snake_case wire form the order endpoint expects.
type PlaceAddress struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	ZipCode       int32  `json:"zip_code"`
}

// PlaceOrderItem references a cart line included in the order.
type PlaceOrderItem struct {
	Item PlaceOrderRef `json:"item"`
}

// PlaceOrderRef identifies a product and quantity inside PlaceOrderItem.
type PlaceOrderRef struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}
