// internal/domain/cart/store.go
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Store holds the line items of a single cart in process memory. It is
// the single source of truth for pricing during a session and is safe
// for concurrent reads from a UI event stream and a checkout in flight.
type Store struct {
	mu    sync.RWMutex
	items []LineItem
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{}
}

// AddItem adds an item to the cart. If an item with the same id already
// exists its quantity is increased by the incoming quantity and, when
// provided, its variant label is overwritten. A non-positive incoming
// quantity defaults to 1. AddItem always succeeds.
func (s *Store) AddItem(item LineItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			if item.VariantLabel != "" {
				s.items[i].VariantLabel = item.VariantLabel
			}
			return
		}
	}

	s.items = append(s.items, item)
}

// RemoveItem removes the line item with the given id. Removing an
// absent id is a no-op, not an error.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(id)
}

// UpdateQuantity sets the quantity of the item with the given id. A
// quantity of zero or below removes the item; a cart never retains a
// line item with a non-positive quantity. Updating an absent id is a
// no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Totals recomputes the derived cart totals from current line items
func (s *Store) Totals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := Totals{TotalPrice: decimal.Zero}
	totals.LineCount = len(s.items)
	for _, item := range s.items {
		totals.ItemCount += item.Quantity
		totals.TotalPrice = totals.TotalPrice.Add(item.LineTotal())
	}

	return totals
}

// Snapshot returns a point-in-time copy of the cart's line items. The
// snapshot taken at checkout submission is what gets sent to the order
// service, decoupled from any cart mutation that happens afterwards.
func (s *Store) Snapshot() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// IsEmpty reports whether the cart has no line items
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items) == 0
}

// Clear empties all line items. Called by the checkout orchestrator
// exactly once per confirmed success.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

func (s *Store) removeLocked(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}
