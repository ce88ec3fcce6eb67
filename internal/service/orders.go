package service

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableside/internal/domain"
)

// OrderService turns a non-empty cart into an immutable order and owns the
// status state machine from then on.
type OrderService struct {
	orders OrderCollection
	now    func() time.Time
}

func NewOrderService(orders OrderCollection) *OrderService {
	return &OrderService{orders: orders, now: time.Now}
}

// PlaceOrder validates the table, snapshots the cart and appends the new
// order. An empty cart silently declines: no order, no error, no mutation.
// The cart is cleared only after the order has been committed.
func (s *OrderService) PlaceOrder(c Cart, tableNumber string) (*domain.Order, error) {
	table := strings.TrimSpace(tableNumber)
	if table == "" {
		return nil, ErrNoTable
	}

	lines := c.Items()
	if len(lines) == 0 {
		return nil, nil
	}
	total := c.Total()

	var order domain.Order
	s.orders.Mutate(func(orders []domain.Order) []domain.Order {
		order = domain.Order{
			ID:          mintOrderID(orders),
			Items:       lines,
			Total:       total,
			Status:      domain.StatusNew,
			Timestamp:   s.now(),
			TableNumber: table,
		}
		return append(orders, order)
	})

	c.Clear()
	return &order, nil
}

// mintOrderID picks a diner-facing 4-digit order number, retrying on
// collision with existing orders. Runs under the collection mutation so two
// concurrent placements cannot mint the same number.
func mintOrderID(orders []domain.Order) string {
	used := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		used[o.ID] = struct{}{}
	}
	for attempt := 0; attempt < 64; attempt++ {
		id := strconv.Itoa(1000 + rand.Intn(9000))
		if _, taken := used[id]; !taken {
			return id
		}
	}
	// The short numeric space is effectively full.
	return uuid.NewString()
}

// UpdateStatus moves an order along the state machine. An unknown order id is
// a benign no-op; an illegal transition is rejected with
// InvalidTransitionError and leaves the order untouched.
func (s *OrderService) UpdateStatus(orderID string, next domain.OrderStatus) error {
	if !next.Valid() {
		return ErrUnknownStatus
	}

	var transitionErr error
	s.orders.Mutate(func(orders []domain.Order) []domain.Order {
		for i := range orders {
			if orders[i].ID != orderID {
				continue
			}
			if !orders[i].Status.CanTransition(next) {
				transitionErr = &InvalidTransitionError{From: orders[i].Status, To: next}
				return orders
			}
			orders[i].Status = next
			return orders
		}
		return orders
	})
	return transitionErr
}

// List returns every order, newest last. Orders are kept as history and
// never deleted.
func (s *OrderService) List() []domain.Order {
	return s.orders.Items()
}

var _ OrderServiceInterface = (*OrderService)(nil)
