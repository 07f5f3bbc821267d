package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ndavydov/storefront/internal/adapter/backend"
	"github.com/ndavydov/storefront/internal/adapter/oss"
	domainErrors "github.com/ndavydov/storefront/internal/domain/errors"
	"github.com/ndavydov/storefront/internal/domain/model"
	"github.com/ndavydov/storefront/internal/metrics"
	"github.com/ndavydov/storefront/internal/payment"
	"github.com/ndavydov/storefront/internal/session"
)

// StorefrontFacade ties the backend client, the object storage uploader and
// the payment tracker into the operations the HTTP layer and the background
// poller consume.
type StorefrontFacade struct {
	backend       *backend.Client
	uploader      *oss.Uploader
	tracker       *payment.Tracker
	collector     *metrics.Collector
	logger        *slog.Logger
	statusWorkers int
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(
	client *backend.Client,
	uploader *oss.Uploader,
	tracker *payment.Tracker,
	collector *metrics.Collector,
	logger *slog.Logger,
	statusWorkers int,
) *StorefrontFacade {
	if statusWorkers <= 0 {
		statusWorkers = 1
	}
	return &StorefrontFacade{
		backend:       client,
		uploader:      uploader,
		tracker:       tracker,
		collector:     collector,
		logger:        logger,
		statusWorkers: statusWorkers,
	}
}

func (f *StorefrontFacade) Login(ctx context.Context, email, password string) (session.Session, error) {
	creds, err := f.backend.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}
	return session.Session{Token: creds.Token, Roles: creds.Roles}, nil
}

func (f *StorefrontFacade) Register(ctx context.Context, email, password string) error {
	return f.backend.Register(ctx, email, password)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.backend.Products(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.backend.Product(ctx, id)
}

// SearchProducts filters the full listing locally. The backend exposes no
// search endpoint, and catalogs stay small enough that filtering here is
// cheaper than growing the backend surface.
func (f *StorefrontFacade) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	products, err := f.backend.Products(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products, nil
	}
	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, token string, np model.NewProduct) (*model.Product, error) {
	return f.backend.CreateProduct(ctx, token, np)
}

func (f *StorefrontFacade) Cart(ctx context.Context, token string) ([]model.CartItem, error) {
	return f.backend.Cart(ctx, token)
}

func (f *StorefrontFacade) EditCart(ctx context.Context, token string, changes []model.CartChange) error {
	return f.backend.EditCart(ctx, token, changes)
}

func (f *StorefrontFacade) CheckoutCart(ctx context.Context, token string) error {
	items, err := f.backend.Cart(ctx, token)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return domainErrors.ErrEmptyCart
	}
	return f.backend.CheckoutCart(ctx, token)
}

// OrdersWithStatus lists the user's orders and refreshes the payment status
// of each one before returning. Orders whose status fetch failed keep their
// last known status; the listing itself only fails when the order fetch does.
func (f *StorefrontFacade) OrdersWithStatus(ctx context.Context, token string) ([]model.Order, error) {
	orders, err := f.backend.Orders(ctx, token)
	if err != nil {
		return nil, err
	}

	tracked := make([]payment.Tracked, 0, len(orders))
	for _, order := range orders {
		f.tracker.Track(order.OrderID, token)
		tracked = append(tracked, payment.Tracked{OrderID: order.OrderID, Token: token})
	}
	failed := payment.Refresh(ctx, f.backend, f.tracker, tracked, f.statusWorkers, f.logger)
	f.collector.RecordStatusPoll(len(failed))
	return orders, nil
}

func (f *StorefrontFacade) StatusOf(orderID string) model.PaymentStatus {
	return f.tracker.Status(orderID)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, token string, order model.PlaceOrder) error {
	return f.backend.PlaceOrder(ctx, token, order)
}

// CancelOrder asks the backend to cancel and, once it agrees, marks the
// order cancelled locally so the caller sees the change before the next
// poll. A failed backend call leaves the tracked status untouched.
func (f *StorefrontFacade) CancelOrder(ctx context.Context, token, orderID string) error {
	if f.tracker.Status(orderID).Terminal() {
		return domainErrors.ErrPaymentTerminal
	}
	if err := f.backend.CancelOrder(ctx, token, orderID); err != nil {
		return err
	}
	// A terminal report arriving meanwhile keeps precedence over the mark.
	_ = f.tracker.LocalOverride(orderID, model.PaymentStatusCancelled)
	return nil
}

func (f *StorefrontFacade) CreatePayment(ctx context.Context, token, orderID string) (string, error) {
	if f.tracker.Status(orderID).Terminal() {
		return "", domainErrors.ErrPaymentTerminal
	}
	paymentURL, err := f.backend.CreatePayment(ctx, token, orderID)
	if err != nil {
		return "", err
	}
	f.tracker.Track(orderID, token)
	return paymentURL, nil
}

// CancelPayment abandons an in-flight payment. Once the backend confirms,
// the order drops back to Uncreated locally so a new payment can be opened
// right away; a failed call leaves the tracked status untouched.
func (f *StorefrontFacade) CancelPayment(ctx context.Context, token, orderID string) error {
	if f.tracker.Status(orderID).Terminal() {
		return domainErrors.ErrPaymentTerminal
	}
	if err := f.backend.CancelPayment(ctx, token, orderID); err != nil {
		return err
	}
	_ = f.tracker.LocalOverride(orderID, model.PaymentStatusUncreated)
	return nil
}

// PrefetchUploadPolicy warms the uploader's policy cache for the named file,
// matching the admin UI that requests a policy as soon as a file is picked.
func (f *StorefrontFacade) PrefetchUploadPolicy(ctx context.Context, token, fileName string) error {
	return f.uploader.Prefetch(ctx, token, fileName)
}

func (f *StorefrontFacade) UploadFiles(ctx context.Context, token string, files []oss.File) []oss.Result {
	results := f.uploader.UploadAll(ctx, token, files)
	for _, r := range results {
		f.collector.RecordUpload(r.Err == nil)
	}
	return results
}

// PendingStatuses lists tracked orders still awaiting a terminal status.
func (f *StorefrontFacade) PendingStatuses(limit int) []payment.Tracked {
	return f.tracker.Pending(limit)
}

// RefreshStatuses polls the backend for the listed orders.
func (f *StorefrontFacade) RefreshStatuses(ctx context.Context, orders []payment.Tracked) {
	failed := payment.Refresh(ctx, f.backend, f.tracker, orders, f.statusWorkers, f.logger)
	f.collector.RecordStatusPoll(len(failed))
}
