package cart

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price string, qty int) LineItem {
	return LineItem{
		ID:        id,
		Title:     "Product " + id,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestAddItemMergesByID(t *testing.T) {
	s := NewStore()

	s.AddItem(item("p1", "499.99", 1))
	s.AddItem(item("p1", "499.99", 2))

	items := s.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItemOverwritesVariantLabel(t *testing.T) {
	s := NewStore()

	first := item("p1", "100", 1)
	first.VariantLabel = "Size 8"
	s.AddItem(first)

	second := item("p1", "100", 1)
	second.VariantLabel = "Size 9"
	s.AddItem(second)

	items := s.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "Size 9", items[0].VariantLabel)

	// A merge without a variant label keeps the existing one
	s.AddItem(item("p1", "100", 1))
	assert.Equal(t, "Size 9", s.Snapshot()[0].VariantLabel)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	s := NewStore()

	s.AddItem(item("p1", "100", 0))

	items := s.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "100", 1))
	s.AddItem(item("p2", "200", 1))

	s.RemoveItem("p1")
	items := s.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)

	// Removing an absent id is a no-op
	s.RemoveItem("missing")
	assert.Len(t, s.Snapshot(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "100", 1))

	s.UpdateQuantity("p1", 5)
	assert.Equal(t, 5, s.Snapshot()[0].Quantity)

	// Updating an absent id is a no-op
	s.UpdateQuantity("missing", 3)
	require.Len(t, s.Snapshot(), 1)
	assert.Equal(t, 5, s.Snapshot()[0].Quantity)
}

func TestUpdateQuantityFloorRemovesItem(t *testing.T) {
	s := NewStore()

	s.AddItem(item("p1", "100", 2))
	s.UpdateQuantity("p1", 0)
	assert.True(t, s.IsEmpty())

	s.AddItem(item("p1", "100", 2))
	s.UpdateQuantity("p1", -5)
	assert.True(t, s.IsEmpty())
}

func TestTotals(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "499.99", 2))
	s.AddItem(item("p2", "299.99", 1))

	totals := s.Totals()
	assert.Equal(t, 2, totals.LineCount)
	assert.Equal(t, 3, totals.ItemCount)
	assert.True(t, totals.TotalPrice.Equal(decimal.RequireFromString("1299.97")),
		"got %s", totals.TotalPrice)
}

func TestTotalsInvariantAfterEveryOperation(t *testing.T) {
	s := NewStore()

	check := func() {
		items := s.Snapshot()
		wantPrice := decimal.Zero
		wantCount := 0
		for _, it := range items {
			wantPrice = wantPrice.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
			wantCount += it.Quantity
		}
		totals := s.Totals()
		require.True(t, totals.TotalPrice.Equal(wantPrice))
		require.Equal(t, wantCount, totals.ItemCount)
	}

	s.AddItem(item("p1", "19.95", 3))
	check()
	s.AddItem(item("p2", "5.50", 1))
	check()
	s.AddItem(item("p1", "19.95", 2))
	check()
	s.UpdateQuantity("p2", 7)
	check()
	s.UpdateQuantity("p1", 0)
	check()
	s.RemoveItem("p2")
	check()
	s.Clear()
	check()
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "100", 1))

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Totals().ItemCount)
	assert.True(t, s.Totals().TotalPrice.IsZero())
}

func TestSnapshotIsDecoupledFromMutation(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "100", 1))

	snapshot := s.Snapshot()
	s.UpdateQuantity("p1", 9)
	s.AddItem(item("p2", "50", 1))

	require.Len(t, snapshot, 1)
	assert.Equal(t, 1, snapshot[0].Quantity)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.AddItem(item(fmt.Sprintf("p%d", n), "10.00", 1))
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Totals()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, s.Totals().ItemCount)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	a := r.GetOrCreate("session-a")
	b := r.GetOrCreate("session-b")
	assert.NotSame(t, a, b)

	a.AddItem(item("p1", "100", 1))
	assert.True(t, b.IsEmpty())

	// Same session id yields the same store
	assert.Same(t, a, r.GetOrCreate("session-a"))

	r.Remove("session-a")
	assert.True(t, r.GetOrCreate("session-a").IsEmpty())
}
