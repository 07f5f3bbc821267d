package model

// Product mirrors a catalog entry served by the commerce backend.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Price       float64  `json:"price"`
	Categories  []string `json:"categories,omitempty"`
}

// NewProduct carries fields required to create a catalog entry.
type NewProduct struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Price       float64  `json:"price"`
	Categories  []string `json:"categories,omitempty"`
}
