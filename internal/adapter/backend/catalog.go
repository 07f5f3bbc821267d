package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	domainErrors "github.com/ndavydov/storefront/internal/domain/errors"
	"github.com/ndavydov/storefront/internal/domain/model"
)

// productPayload mirrors the catalog wire format, which differs from the
// internal model in field naming (product_name, img).
type productPayload struct {
	ID          int64    `json:"id"`
	Name        string   `json:"product_name"`
	Description string   `json:"description"`
	Picture     string   `json:"img"`
	Price       float64  `json:"price"`
	Categories  []string `json:"categories,omitempty"`
}

func (p productPayload) toModel() model.Product {
	return model.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Picture:     p.Picture,
		Price:       p.Price,
		Categories:  p.Categories,
	}
}

type productListResponse struct {
	Items []productPayload `json:"item"`
}

// Products fetches the full catalog listing.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var resp productListResponse
	if err := c.do(ctx, http.MethodGet, "/product", "", nil, &resp); err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(resp.Items))
	for _, p := range resp.Items {
		products = append(products, p.toModel())
	}
	return products, nil
}

// Product fetches a single catalog entry.
func (c *Client) Product(ctx context.Context, id int64) (*model.Product, error) {
	var resp productPayload
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/product/%d", id), "", nil, &resp)
	if err != nil {
		var status *StatusError
		if errors.As(err, &status) && status.Code == http.StatusNotFound {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	product := resp.toModel()
	return &product, nil
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Price       float64  `json:"price"`
	Categories  []string `json:"categories,omitempty"`
}

type createProductResponse struct {
	Product productPayload `json:"product"`
}

// CreateProduct adds a catalog entry. Admin-only on the backend side; the
// bearer token carries the authority.
func (c *Client) CreateProduct(ctx context.Context, token string, np model.NewProduct) (*model.Product, error) {
	req := createProductRequest{
		Name:        np.Name,
		Description: np.Description,
		Picture:     np.Picture,
		Price:       np.Price,
		Categories:  np.Categories,
	}
	var resp createProductResponse
	if err := c.do(ctx, http.MethodPost, "/product/create", token, req, &resp); err != nil {
		return nil, err
	}
	product := resp.Product.toModel()
	return &product, nil
}
