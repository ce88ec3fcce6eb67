package storage

import (
	"encoding/json"
	"log"
	"sync"
)

// LoadCollection reads the list stored under key. A missing, unparsable or
// non-list value yields the fallback; corruption is logged, never surfaced.
func LoadCollection[T any](store *Store, key string, fallback []T) []T {
	raw, ok, err := store.Get(key)
	if err != nil {
		log.Printf("[tableside] reading %q from storage: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[tableside] stored value under %q is not a valid list, using fallback: %v", key, err)
		return fallback
	}
	if items == nil {
		return fallback
	}
	return items
}

// SaveCollection overwrites the list stored under key. Failures are logged
// and swallowed: the in-memory state stays authoritative for the session.
func SaveCollection[T any](store *Store, key string, items []T) {
	raw, err := json.Marshal(items)
	if err != nil {
		log.Printf("[tableside] encoding %q for storage: %v", key, err)
		return
	}
	if err := store.Put(key, raw); err != nil {
		log.Printf("[tableside] writing %q to storage: %v", key, err)
	}
}

// Collection is the durable repository for one of the three independent
// lists. It owns the authoritative in-memory slice, mirrors every mutation
// to the store and notifies subscribers after each change. The three
// collections are uncoordinated: each is independently eventually consistent
// with its stored counterpart.
//
// Subscribers are invoked under the collection lock so snapshots always
// arrive in mutation order; a subscriber must not call back into the
// collection.
type Collection[T any] struct {
	store *Store
	key   string

	mu    sync.Mutex
	items []T
	subs  []func([]T)
}

// NewCollection loads the stored list under key, substituting fallback when
// nothing usable is stored.
func NewCollection[T any](store *Store, key string, fallback []T) *Collection[T] {
	return &Collection[T]{
		store: store,
		key:   key,
		items: LoadCollection(store, key, fallback),
	}
}

// Items returns a copy of the current list.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Replace swaps in a whole new list, the contract the editing forms use:
// read the current collection, submit a replacement.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.persistLocked()
	c.notifyLocked()
}

// Mutate applies fn to the current list and commits the result.
func (c *Collection[T]) Mutate(fn func(items []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
	c.persistLocked()
	c.notifyLocked()
}

// Subscribe registers fn to run after every mutation, and calls it once with
// the current list so subscribers never start stale.
func (c *Collection[T]) Subscribe(fn func(items []T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
	fn(c.snapshotLocked())
}

func (c *Collection[T]) notifyLocked() {
	snapshot := c.snapshotLocked()
	for _, fn := range c.subs {
		fn(snapshot)
	}
}

func (c *Collection[T]) snapshotLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) persistLocked() {
	SaveCollection(c.store, c.key, c.items)
}
