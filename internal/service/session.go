package service

import (
	"sync"

	"tableside/internal/domain"
)

// TableSessionResolver derives the one order currently relevant to a table's
// screen. It tracks the order collection through its subscription, so every
// mutation recomputes what each table sees.
type TableSessionResolver struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewTableSessionResolver(orders OrderCollection) *TableSessionResolver {
	r := &TableSessionResolver{}
	orders.Subscribe(func(items []domain.Order) {
		r.mu.Lock()
		r.orders = items
		r.mu.Unlock()
	})
	return r
}

// Resolve returns the most recently appended order for the table whose
// status is known and not terminal. Orders carrying an unrecognized status,
// say from a hand-edited data file, never count as active. Ties between
// identical timestamps do not matter: list order is the tiebreak, so the
// scan walks from the end.
func (r *TableSessionResolver) Resolve(tableNumber string) (*domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if o.TableNumber == tableNumber && o.Status.Valid() && !o.Status.Terminal() {
			return &o, true
		}
	}
	return nil, false
}

var _ SessionResolver = (*TableSessionResolver)(nil)
