package test

import (
	"context"
	"sync"

	"github.com/ndavydov/storefront/internal/adapter/oss"
	"github.com/ndavydov/storefront/internal/domain/model"
	"github.com/ndavydov/storefront/internal/payment"
	"github.com/ndavydov/storefront/internal/session"
)

// StorefrontFacadeStub provides controllable behaviour for every handler
// endpoint. Unset functions fall back to benign defaults.
type StorefrontFacadeStub struct {
	LoginFn          func(context.Context, string, string) (session.Session, error)
	RegisterFn       func(context.Context, string, string) error
	ProductsFn       func(context.Context) ([]model.Product, error)
	ProductFn        func(context.Context, int64) (*model.Product, error)
	SearchFn         func(context.Context, string) ([]model.Product, error)
	CreateProductFn  func(context.Context, string, model.NewProduct) (*model.Product, error)
	CartFn           func(context.Context, string) ([]model.CartItem, error)
	EditCartFn       func(context.Context, string, []model.CartChange) error
	CheckoutFn       func(context.Context, string) error
	OrdersFn         func(context.Context, string) ([]model.Order, error)
	StatusOfFn       func(string) model.PaymentStatus
	PlaceOrderFn     func(context.Context, string, model.PlaceOrder) error
	CancelOrderFn    func(context.Context, string, string) error
	CreatePaymentFn  func(context.Context, string, string) (string, error)
	CancelPaymentFn  func(context.Context, string, string) error
	PrefetchPolicyFn func(context.Context, string, string) error
	UploadFilesFn    func(context.Context, string, []oss.File) []oss.Result
}

// Login delegates to the override or returns a fixed session.
func (s *StorefrontFacadeStub) Login(ctx context.Context, email, password string) (session.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return session.Session{Token: "token", Roles: []string{"user"}}, nil
}

// Register delegates to the override or accepts the registration.
func (s *StorefrontFacadeStub) Register(ctx context.Context, email, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return nil
}

// Products returns the configured listing or a single default product.
func (s *StorefrontFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "widget", Price: 9.99}}, nil
}

// Product returns the configured product or a default one with the given id.
func (s *StorefrontFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "widget", Price: 9.99}, nil
}

// SearchProducts delegates to the override or returns the full listing.
func (s *StorefrontFacadeStub) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return s.Products(ctx)
}

// CreateProduct echoes the new product back with a fixed id.
func (s *StorefrontFacadeStub) CreateProduct(ctx context.Context, token string, np model.NewProduct) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, token, np)
	}
	return &model.Product{ID: 1, Name: np.Name, Description: np.Description, Price: np.Price}, nil
}

// Cart returns configured cart contents or an empty cart.
func (s *StorefrontFacadeStub) Cart(ctx context.Context, token string) ([]model.CartItem, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, token)
	}
	return []model.CartItem{}, nil
}

// EditCart executes the configured edit handler.
func (s *StorefrontFacadeStub) EditCart(ctx context.Context, token string, changes []model.CartChange) error {
	if s.EditCartFn != nil {
		return s.EditCartFn(ctx, token, changes)
	}
	return nil
}

// CheckoutCart executes the configured checkout handler.
func (s *StorefrontFacadeStub) CheckoutCart(ctx context.Context, token string) error {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, token)
	}
	return nil
}

// OrdersWithStatus returns preconfigured order history.
func (s *StorefrontFacadeStub) OrdersWithStatus(ctx context.Context, token string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, token)
	}
	return []model.Order{{OrderID: "1"}}, nil
}

// StatusOf reports the configured status, Unknown by default.
func (s *StorefrontFacadeStub) StatusOf(orderID string) model.PaymentStatus {
	if s.StatusOfFn != nil {
		return s.StatusOfFn(orderID)
	}
	return model.PaymentStatusUnknown
}

// PlaceOrder executes the configured placement handler.
func (s *StorefrontFacadeStub) PlaceOrder(ctx context.Context, token string, order model.PlaceOrder) error {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, token, order)
	}
	return nil
}

// CancelOrder executes the configured cancellation handler.
func (s *StorefrontFacadeStub) CancelOrder(ctx context.Context, token, orderID string) error {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, token, orderID)
	}
	return nil
}

// CreatePayment returns the configured payment URL.
func (s *StorefrontFacadeStub) CreatePayment(ctx context.Context, token, orderID string) (string, error) {
	if s.CreatePaymentFn != nil {
		return s.CreatePaymentFn(ctx, token, orderID)
	}
	return "https://pay.example.com/" + orderID, nil
}

// CancelPayment executes the configured cancellation handler.
func (s *StorefrontFacadeStub) CancelPayment(ctx context.Context, token, orderID string) error {
	if s.CancelPaymentFn != nil {
		return s.CancelPaymentFn(ctx, token, orderID)
	}
	return nil
}

// PrefetchUploadPolicy delegates to the override or succeeds.
func (s *StorefrontFacadeStub) PrefetchUploadPolicy(ctx context.Context, token, fileName string) error {
	if s.PrefetchPolicyFn != nil {
		return s.PrefetchPolicyFn(ctx, token, fileName)
	}
	return nil
}

// UploadFiles reports every file as uploaded unless overridden.
func (s *StorefrontFacadeStub) UploadFiles(ctx context.Context, token string, files []oss.File) []oss.Result {
	if s.UploadFilesFn != nil {
		return s.UploadFilesFn(ctx, token, files)
	}
	results := make([]oss.Result, 0, len(files))
	for _, f := range files {
		results = append(results, oss.Result{Name: f.Name, URL: "https://bucket.example.com/" + f.Name})
	}
	return results
}

// StatusSourceStub mimics poller interactions with the application facade.
type StatusSourceStub struct {
	Pending   [][]payment.Tracked
	PendingFn func(int) []payment.Tracked
	RefreshFn func(context.Context, []payment.Tracked)

	mu          sync.Mutex
	pendingCall int
	Refreshed   [][]payment.Tracked
}

// PendingStatuses returns batches from the configured queue.
func (s *StatusSourceStub) PendingStatuses(limit int) []payment.Tracked {
	if s.PendingFn != nil {
		return s.PendingFn(limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingCall < len(s.Pending) {
		batch := s.Pending[s.pendingCall]
		s.pendingCall++
		return batch
	}
	return nil
}

// RefreshStatuses records every refresh request.
func (s *StatusSourceStub) RefreshStatuses(ctx context.Context, orders []payment.Tracked) {
	if s.RefreshFn != nil {
		s.RefreshFn(ctx, orders)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Refreshed = append(s.Refreshed, orders)
}

// RefreshCount reports how many refresh batches were recorded.
func (s *StatusSourceStub) RefreshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Refreshed)
}
