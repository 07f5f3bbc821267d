package payment

import (
	"sync"

	domainErrors "github.com/ndavydov/storefront/internal/domain/errors"
	"github.com/ndavydov/storefront/internal/domain/model"
)

// Tracker holds the transient per-order payment status the order views render.
// Nothing here is persisted; the backend status endpoint is the source of
// truth and the tracker merely reconciles it with optimistic local updates.
//
// The state of one order is reduced over two kinds of events:
//
//	ServerReported(status): a poll result; always becomes the new status and
//	clears any standing local override.
//	LocalOverride(status): an optimistic update from a user action; wins
//	over the last server report until the next one arrives.
type Tracker struct {
	mu     sync.RWMutex
	orders map[string]*entry
}

type entry struct {
	status     model.PaymentStatus
	overridden bool
	token      string
}

// Tracked identifies an order eligible for background status refresh together
// with the bearer token authorized to read it.
type Tracked struct {
	OrderID string
	Token   string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{orders: make(map[string]*entry)}
}

// Track registers an order for status bookkeeping. Safe to call repeatedly;
// the token is refreshed so background polls use the latest credential seen.
func (t *Tracker) Track(orderID, token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.orders[orderID]; ok {
		e.token = token
		return
	}
	t.orders[orderID] = &entry{token: token}
}

// ServerReported applies a poll result for the order.
func (t *Tracker) ServerReported(orderID string, status model.PaymentStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.orders[orderID]
	if !ok {
		e = &entry{}
		t.orders[orderID] = e
	}
	if e.overridden {
		// The override was only good until this report.
		e.overridden = false
	}
	e.status = status
}

// LocalOverride applies an optimistic status ahead of server confirmation.
// Orders already in a terminal state accept no further transitions.
func (t *Tracker) LocalOverride(orderID string, status model.PaymentStatus) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.orders[orderID]
	if !ok {
		e = &entry{}
		t.orders[orderID] = e
	}
	if e.status.Terminal() {
		return domainErrors.ErrPaymentTerminal
	}
	e.status = status
	e.overridden = true
	return nil
}

// Status returns the current reduced status for the order, Unknown when the
// order has never reported.
func (t *Tracker) Status(orderID string) model.PaymentStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e, ok := t.orders[orderID]; ok {
		return e.status
	}
	return model.PaymentStatusUnknown
}

// Pending lists up to limit tracked orders whose status is not terminal, for
// the background poller to refresh.
func (t *Tracker) Pending(limit int) []Tracked {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pending := make([]Tracked, 0, limit)
	for id, e := range t.orders {
		if e.status.Terminal() || e.token == "" {
			continue
		}
		pending = append(pending, Tracked{OrderID: id, Token: e.token})
		if len(pending) == limit {
			break
		}
	}
	return pending
}
