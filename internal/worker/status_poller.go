package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ndavydov/storefront/internal/payment"
)

// StatusSource exposes the subset of application functionality required by the poller.
type StatusSource interface {
	PendingStatuses(limit int) []payment.Tracked
	RefreshStatuses(ctx context.Context, orders []payment.Tracked)
}

// StatusPoller periodically re-fetches payment statuses for tracked orders
// that have not reached a terminal state yet, so the view stays current
// between page loads.
type StatusPoller struct {
	source       StatusSource
	pollInterval time.Duration
	batchSize    int
	logger       *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStatusPoller constructs the payment status poller.
func NewStatusPoller(source StatusSource, pollInterval time.Duration, batchSize int, logger *slog.Logger) *StatusPoller {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &StatusPoller{
		source:       source,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		logger:       logger,
	}
}

// Start launches background polling.
func (p *StatusPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.loop(runCtx)
}

// Stop waits for the polling loop to finish.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *StatusPoller) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *StatusPoller) poll(ctx context.Context) {
	pending := p.source.PendingStatuses(p.batchSize)
	if len(pending) == 0 {
		return
	}
	p.logger.Debug("polling payment statuses", slog.Int("orders", len(pending)))
	p.source.RefreshStatuses(ctx, pending)
}
