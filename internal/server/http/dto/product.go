package dto

import "github.com/ndavydov/storefront/internal/domain/model"

// ProductsResponse wraps a catalog listing.
type ProductsResponse struct {
	Products []model.Product `json:"products"`
}

// CreateProductRequest carries a new catalog entry.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Price       float64  `json:"price"`
	Categories  []string `json:"categories,omitempty"`
}

// CreateProductResponse returns the created entry.
type CreateProductResponse struct {
	Product model.Product `json:"product"`
}
