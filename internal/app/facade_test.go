package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ndavydov/storefront/internal/adapter/backend"
	"github.com/ndavydov/storefront/internal/adapter/oss"
	domainErrors "github.com/ndavydov/storefront/internal/domain/errors"
	"github.com/ndavydov/storefront/internal/domain/model"
	"github.com/ndavydov/storefront/internal/metrics"
	"github.com/ndavydov/storefront/internal/payment"
	"github.com/prometheus/client_golang/prometheus"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestFacade(t *testing.T, handler http.Handler) *StorefrontFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create backend client: %v", err)
	}
	uploader := oss.NewUploader(client, time.Second, testLogger())
	collector := metrics.NewCollector(prometheus.NewRegistry())
	return NewStorefrontFacade(client, uploader, payment.NewTracker(), collector, testLogger(), 2)
}

func TestFacadeSearchProductsFiltersLocally(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/product", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"item":[
			{"id":1,"product_name":"Coffee Mug","description":"ceramic"},
			{"id":2,"product_name":"Tea Pot","description":"stoneware"},
			{"id":3,"product_name":"Spoon","description":"for coffee"}
		]}`))
	})
	facade := newTestFacade(t, mux)

	found, err := facade.SearchProducts(context.Background(), "coffee")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}

	all, err := facade.SearchProducts(context.Background(), "  ")
	if err != nil {
		t.Fatalf("blank search failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("blank query must return everything, got %d", len(all))
	}
}

func TestFacadeCheckoutRejectsEmptyCart(t *testing.T) {
	var checkedOut atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	mux.HandleFunc("/cart/checkout", func(w http.ResponseWriter, r *http.Request) {
		checkedOut.Store(true)
	})
	facade := newTestFacade(t, mux)

	err := facade.CheckoutCart(context.Background(), "tok")
	if !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if checkedOut.Load() {
		t.Fatal("backend checkout must not run for an empty cart")
	}
}

func TestFacadeOrdersWithStatusTracksAndPolls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/order", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders":[{"orderId":"1"},{"orderId":"2"}]}`))
	})
	mux.HandleFunc("/payment/1/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "PAYING"})
	})
	mux.HandleFunc("/payment/2/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "FINISH"})
	})
	facade := newTestFacade(t, mux)

	orders, err := facade.OrdersWithStatus(context.Background(), "tok")
	if err != nil {
		t.Fatalf("orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if got := facade.StatusOf("1"); got != model.PaymentStatusPaying {
		t.Fatalf("expected Paying for order 1, got %q", got)
	}
	if got := facade.StatusOf("2"); got != model.PaymentStatusFinished {
		t.Fatalf("expected Finished for order 2, got %q", got)
	}

	// Only the unfinished order remains eligible for background polling.
	pending := facade.PendingStatuses(10)
	if len(pending) != 1 || pending[0].OrderID != "1" {
		t.Fatalf("expected only order 1 pending, got %v", pending)
	}
}

func TestFacadeCancelPaymentIsOptimistic(t *testing.T) {
	var cancelled atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/order", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders":[{"orderId":"1"}]}`))
	})
	mux.HandleFunc("/payment/1/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "PAYING"})
	})
	mux.HandleFunc("/payment/1/cancel", func(w http.ResponseWriter, r *http.Request) {
		cancelled.Store(true)
	})
	facade := newTestFacade(t, mux)

	if _, err := facade.OrdersWithStatus(context.Background(), "tok"); err != nil {
		t.Fatalf("orders failed: %v", err)
	}

	if err := facade.CancelPayment(context.Background(), "tok", "1"); err != nil {
		t.Fatalf("cancel payment failed: %v", err)
	}
	if !cancelled.Load() {
		t.Fatal("backend cancel must be called")
	}
	if got := facade.StatusOf("1"); got != model.PaymentStatusUncreated {
		t.Fatalf("expected optimistic Uncreated, got %q", got)
	}

	// The next server report replaces the optimistic value.
	facade.RefreshStatuses(context.Background(), []payment.Tracked{{OrderID: "1", Token: "tok"}})
	if got := facade.StatusOf("1"); got != model.PaymentStatusPaying {
		t.Fatalf("expected server report to win, got %q", got)
	}
}

func TestFacadeCancelOrderKeepsStatusWhenBackendFails(t *testing.T) {
	var attempts atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/order", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders":[{"orderId":"1"}]}`))
	})
	mux.HandleFunc("/payment/1/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "PAYING"})
	})
	mux.HandleFunc("/order/1/cancel", func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	facade := newTestFacade(t, mux)

	if _, err := facade.OrdersWithStatus(context.Background(), "tok"); err != nil {
		t.Fatalf("orders failed: %v", err)
	}

	if err := facade.CancelOrder(context.Background(), "tok", "1"); err == nil {
		t.Fatal("expected the failed backend cancel to surface")
	}
	if got := facade.StatusOf("1"); got != model.PaymentStatusPaying {
		t.Fatalf("failed cancel must not change the status, got %q", got)
	}

	// The user retries by hand and this time the backend agrees.
	if err := facade.CancelOrder(context.Background(), "tok", "1"); err != nil {
		t.Fatalf("retry must not be blocked, got %v", err)
	}
	if got := facade.StatusOf("1"); got != model.PaymentStatusCancelled {
		t.Fatalf("expected Cancelled after successful retry, got %q", got)
	}
}

func TestFacadeCancelPaymentKeepsStatusWhenBackendFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/order", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders":[{"orderId":"1"}]}`))
	})
	mux.HandleFunc("/payment/1/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "PAYING"})
	})
	mux.HandleFunc("/payment/1/cancel", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	facade := newTestFacade(t, mux)

	if _, err := facade.OrdersWithStatus(context.Background(), "tok"); err != nil {
		t.Fatalf("orders failed: %v", err)
	}

	if err := facade.CancelPayment(context.Background(), "tok", "1"); err == nil {
		t.Fatal("expected the failed backend cancel to surface")
	}
	if got := facade.StatusOf("1"); got != model.PaymentStatusPaying {
		t.Fatalf("failed cancel must not drop the status, got %q", got)
	}
}

func TestFacadeCreatePaymentOnSettledOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/order", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders":[{"orderId":"1"}]}`))
	})
	mux.HandleFunc("/payment/1/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "FINISH"})
	})
	facade := newTestFacade(t, mux)

	if _, err := facade.OrdersWithStatus(context.Background(), "tok"); err != nil {
		t.Fatalf("orders failed: %v", err)
	}

	if _, err := facade.CreatePayment(context.Background(), "tok", "1"); !errors.Is(err, domainErrors.ErrPaymentTerminal) {
		t.Fatalf("expected ErrPaymentTerminal, got %v", err)
	}
	if err := facade.CancelOrder(context.Background(), "tok", "1"); !errors.Is(err, domainErrors.ErrPaymentTerminal) {
		t.Fatalf("expected ErrPaymentTerminal on cancel, got %v", err)
	}
}

func TestFacadePrefetchedPolicyServesNextUpload(t *testing.T) {
	var fetches, posts atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/file/upload", func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"key":  "img/banner.png",
			"host": "http://" + r.Host + "/bucket",
		})
	})
	mux.HandleFunc("/bucket", func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
	})
	facade := newTestFacade(t, mux)

	if err := facade.PrefetchUploadPolicy(context.Background(), "tok", "banner.png"); err != nil {
		t.Fatalf("prefetch failed: %v", err)
	}
	if fetches.Load() != 1 {
		t.Fatalf("expected 1 policy fetch after prefetch, got %d", fetches.Load())
	}

	results := facade.UploadFiles(context.Background(), "tok", []oss.File{
		{Name: "banner.png", Content: strings.NewReader("png bytes")},
	})
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("upload failed: %+v", results)
	}
	if posts.Load() != 1 {
		t.Fatalf("expected 1 storage post, got %d", posts.Load())
	}
	// The cached policy covered the upload; no second fetch went out.
	if fetches.Load() != 1 {
		t.Fatalf("expected the prefetched policy to be reused, got %d fetches", fetches.Load())
	}
}

func TestFacadeCreatePayment(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/payment", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OrderID string `json:"order_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID != "7" {
			t.Fatalf("unexpected payment request: %v %q", err, req.OrderID)
		}
		json.NewEncoder(w).Encode(map[string]string{"paymentUrl": "https://pay.example.com/7"})
	})
	facade := newTestFacade(t, mux)

	url, err := facade.CreatePayment(context.Background(), "tok", "7")
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if url != "https://pay.example.com/7" {
		t.Fatalf("unexpected payment url %q", url)
	}
}
