package payment

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ndavydov/storefront/internal/domain/model"
)

// StatusFetcher is the slice of the backend client the refresher needs.
type StatusFetcher interface {
	PaymentStatus(ctx context.Context, token, orderID string) (model.PaymentStatus, error)
}

// Refresh fetches the payment status of every listed order with at most
// workers concurrent requests and feeds the results into the tracker. One
// order's fetch failure leaves its status as-is (Unknown if never reported)
// and does not block the others; failures are reported once at the end.
// Returns the ids whose fetch failed.
func Refresh(ctx context.Context, fetcher StatusFetcher, tracker *Tracker, orders []Tracked, workers int, logger *slog.Logger) []string {
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan Tracked)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for order := range jobs {
				status, err := fetcher.PaymentStatus(ctx, order.Token, order.OrderID)
				if err != nil {
					mu.Lock()
					failures = append(failures, order.OrderID)
					mu.Unlock()
					continue
				}
				tracker.ServerReported(order.OrderID, status)
			}
		}()
	}

	for _, order := range orders {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return failures
		case jobs <- order:
		}
	}
	close(jobs)
	wg.Wait()

	if len(failures) > 0 {
		logger.Warn("payment status refresh incomplete",
			slog.Int("requested", len(orders)),
			slog.Int("failed", len(failures)),
		)
	}
	return failures
}
