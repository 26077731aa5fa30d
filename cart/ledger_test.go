package cart

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store used by the tests.
type memStore struct {
	saved   map[string][]models.CartLine
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{saved: make(map[string][]models.CartLine)}
}

func (s *memStore) Load(_ context.Context, userID string) ([]models.CartLine, error) {
	return s.saved[userID], nil
}

func (s *memStore) Save(_ context.Context, userID string, lines []models.CartLine) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved[userID] = append([]models.CartLine(nil), lines...)
	return nil
}

func (s *memStore) Erase(_ context.Context, userID string) error {
	delete(s.saved, userID)
	return nil
}

func cartItem(id string, price, discount float64) models.Item {
	return models.Item{ID: id, ItemID: "it-" + id, Name: "Item " + id, UnitPrice: price, Discount: discount}
}

func TestLedgerAddRemoveSetQuantityExample(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	ledger := NewLedger("u1", store)

	itemA := cartItem("A", 10, 0)
	itemB := cartItem("B", 50, 20)

	require.NoError(t, ledger.Add(ctx, itemA, 2))
	assert.InDelta(t, 20.0, ledger.Snapshot().TotalPrice, 1e-9)

	require.NoError(t, ledger.Add(ctx, itemB, 1))
	assert.InDelta(t, 60.0, ledger.Snapshot().TotalPrice, 1e-9)

	require.NoError(t, ledger.SetQuantity(ctx, "A", 0))
	snap := ledger.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "B", snap.Lines[0].Item.ID)
	assert.InDelta(t, 40.0, snap.TotalPrice, 1e-9)

	require.NoError(t, ledger.Clear(ctx))
	snap = ledger.Snapshot()
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.TotalPrice)
	assert.Empty(t, store.saved["u1"])
}

func TestLedgerMergesLinesPerItemID(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger("u1", newMemStore())

	item := cartItem("A", 5, 0)
	require.NoError(t, ledger.Add(ctx, item, 1))
	require.NoError(t, ledger.Add(ctx, item, 3))

	snap := ledger.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 4, snap.Lines[0].Quantity)
}

func TestLedgerRemoveAbsentLineIsNoError(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger("u1", newMemStore())
	require.NoError(t, ledger.Remove(ctx, "ghost"))
	assert.Zero(t, ledger.Snapshot().TotalPrice)
}

func TestLedgerSetQuantityIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger("u1", newMemStore())
	require.NoError(t, ledger.Add(ctx, cartItem("A", 12.5, 10), 1))

	require.NoError(t, ledger.SetQuantity(ctx, "A", 7))
	first := ledger.Snapshot()
	require.NoError(t, ledger.SetQuantity(ctx, "A", 7))
	second := ledger.Snapshot()

	assert.Equal(t, first, second)
}

func TestLedgerTotalMatchesRecomputedFormula(t *testing.T) {
	// Property check: after any op sequence the total equals the formula
	// recomputed from scratch over the final line set.
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	items := []models.Item{
		cartItem("A", 10, 0),
		cartItem("B", 50, 20),
		cartItem("C", 3.3, 50),
		cartItem("D", 99.99, 5),
	}

	ledger := NewLedger("u1", newMemStore())
	for i := 0; i < 200; i++ {
		item := items[rng.Intn(len(items))]
		switch rng.Intn(4) {
		case 0:
			require.NoError(t, ledger.Add(ctx, item, 1+rng.Intn(3)))
		case 1:
			require.NoError(t, ledger.Remove(ctx, item.ID))
		case 2:
			require.NoError(t, ledger.SetQuantity(ctx, item.ID, rng.Intn(5)))
		case 3:
			// no-op read between mutations
			_ = ledger.Snapshot()
		}

		snap := ledger.Snapshot()
		want := 0.0
		for _, line := range snap.Lines {
			want += line.Item.UnitPrice * (1 - line.Item.Discount/100) * float64(line.Quantity)
			assert.GreaterOrEqual(t, line.Quantity, 1)
		}
		require.InDelta(t, want, snap.TotalPrice, 1e-9)
	}
}

func TestLedgerPersistsAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	ledger := NewLedger("u1", store)

	require.NoError(t, ledger.Add(ctx, cartItem("A", 10, 0), 2))
	require.Len(t, store.saved["u1"], 1)
	assert.Equal(t, 2, store.saved["u1"][0].Quantity)

	require.NoError(t, ledger.SetQuantity(ctx, "A", 5))
	assert.Equal(t, 5, store.saved["u1"][0].Quantity)
}

func TestLedgerReportsStoreFailuresButKeepsState(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.saveErr = errors.New("redis down")
	ledger := NewLedger("u1", store)

	err := ledger.Add(ctx, cartItem("A", 10, 0), 1)
	require.Error(t, err)
	// In-memory state survives the failed write.
	assert.InDelta(t, 10.0, ledger.Snapshot().TotalPrice, 1e-9)
}

func TestManagerRestoresPersistedCart(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.saved["u1"] = []models.CartLine{{Item: cartItem("A", 10, 0), Quantity: 2}}

	m := NewManager(store)
	ledger := m.Ledger(ctx, "u1")
	assert.InDelta(t, 20.0, ledger.Snapshot().TotalPrice, 1e-9)

	// Same ledger instance on repeat access.
	assert.Same(t, ledger, m.Ledger(ctx, "u1"))

	m.Drop("u1")
	assert.NotSame(t, ledger, m.Ledger(ctx, "u1"))
}
