package cart

import "sync"

// Registry hands out one cart per table identifier. Every terminal scanned
// to the same table shares that table's cart.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Store)}
}

// Get returns the cart for the given table, creating it on first use.
func (r *Registry) Get(table string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[table]
	if !ok {
		c = NewStore()
		r.carts[table] = c
	}
	return c
}
