// Package cart holds a diner's in-progress selection before it becomes an
// order. Nothing here is durable: a cart lives and dies with the session.
package cart

import (
	"sync"

	"github.com/google/uuid"

	"tableside/internal/domain"
)

// lineKey is the merge identity of a cart line: the same dish with the same
// (or absent) specification always lands on the same line.
type lineKey struct {
	dishID   string
	specName string
}

func keyFor(dishID string, spec *domain.Specification) lineKey {
	k := lineKey{dishID: dishID}
	if spec != nil {
		k.specName = spec.Name
	}
	return k
}

// Store accumulates cart lines in insertion order, indexed by merge key so
// repeated additions collapse instead of piling up duplicate lines.
type Store struct {
	mu    sync.Mutex
	lines []domain.CartItem
	index map[lineKey]int
}

func NewStore() *Store {
	return &Store{index: make(map[lineKey]int)}
}

// AddItem merges quantity into an existing line with the same dish and
// specification, or appends a new line. Non-positive quantities are ignored.
func (s *Store) AddItem(dish domain.Dish, spec *domain.Specification, quantity int) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyFor(dish.ID, spec)
	if i, ok := s.index[key]; ok {
		s.lines[i].Quantity += quantity
		return
	}

	item := domain.CartItem{
		ID:       uuid.NewString(),
		Dish:     dish,
		Quantity: quantity,
	}
	if spec != nil {
		chosen := *spec
		item.SelectedSpecification = &chosen
	}
	s.index[key] = len(s.lines)
	s.lines = append(s.lines, item)
}

// UpdateQuantity sets a line's quantity exactly. Anything at or below zero
// removes the line; a zero-quantity row never persists.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.ID != lineID {
			continue
		}
		if quantity <= 0 {
			s.removeAt(i)
		} else {
			s.lines[i].Quantity = quantity
		}
		return
	}
}

func (s *Store) removeAt(i int) {
	delete(s.index, keyFor(s.lines[i].Dish.ID, s.lines[i].SelectedSpecification))
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	for j := i; j < len(s.lines); j++ {
		s.index[keyFor(s.lines[j].Dish.ID, s.lines[j].SelectedSpecification)] = j
	}
}

// Clear empties the cart after an order is placed or by explicit request.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.index = make(map[lineKey]int)
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums the effective unit price times quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, line := range s.lines {
		total += line.UnitPrice() * float64(line.Quantity)
	}
	return total
}

// ItemCount sums the quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}
