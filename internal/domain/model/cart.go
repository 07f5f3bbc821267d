package model

// CartItem is a cart line as reported by the backend cart service.
type CartItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
	Image       string  `json:"img"`
}

// CartChange sets the quantity of a single product in the cart.
// Quantity zero removes the line.
type CartChange struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}
