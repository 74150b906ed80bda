// internal/domain/cart/registry.go
package cart

import (
	"sync"
)

// Registry keys cart stores by session id so each storefront session
// gets its own cart. Carts live only in process memory and disappear
// when the process exits.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry creates an empty cart registry
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]*Store),
	}
}

// GetOrCreate returns the cart store for the given session id,
// creating an empty one on first use.
func (r *Registry) GetOrCreate(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[sessionID]
	if !ok {
		store = NewStore()
		r.stores[sessionID] = store
	}
	return store
}

// Remove drops the cart store for the given session id
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.stores, sessionID)
}
