package handlers

import (
	"context"

	"github.com/ndavydov/storefront/internal/adapter/oss"
	"github.com/ndavydov/storefront/internal/domain/model"
	"github.com/ndavydov/storefront/internal/session"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Register(ctx context.Context, email, password string) error
}

// CatalogFacade exposes catalog browsing and administration.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
	CreateProduct(ctx context.Context, token string, np model.NewProduct) (*model.Product, error)
}

// CartFacade exposes cart operations.
type CartFacade interface {
	Cart(ctx context.Context, token string) ([]model.CartItem, error)
	EditCart(ctx context.Context, token string, changes []model.CartChange) error
	CheckoutCart(ctx context.Context, token string) error
}

// OrderFacade covers order history and the payment lifecycle.
type OrderFacade interface {
	OrdersWithStatus(ctx context.Context, token string) ([]model.Order, error)
	StatusOf(orderID string) model.PaymentStatus
	PlaceOrder(ctx context.Context, token string, order model.PlaceOrder) error
	CancelOrder(ctx context.Context, token, orderID string) error
	CreatePayment(ctx context.Context, token, orderID string) (string, error)
	CancelPayment(ctx context.Context, token, orderID string) error
}

// UploadFacade runs direct object storage uploads.
type UploadFacade interface {
	PrefetchUploadPolicy(ctx context.Context, token, fileName string) error
	UploadFiles(ctx context.Context, token string, files []oss.File) []oss.Result
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	UploadFacade
}
