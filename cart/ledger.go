package cart

import (
	"context"
	"sync"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// Store persists a user's cart lines as one JSON document per user. Save
// and Erase report their result explicitly; callers decide whether a failed
// write is fatal (the controllers log and keep the in-memory state).
type Store interface {
	Load(ctx context.Context, userID string) ([]models.CartLine, error)
	Save(ctx context.Context, userID string, lines []models.CartLine) error
	Erase(ctx context.Context, userID string) error
}

// Ledger is one user's cart: at most one line per item id, each line with
// quantity >= 1, and a total price recomputed from scratch after every
// mutation so it can never drift from the line set.
type Ledger struct {
	mu     sync.Mutex
	userID string
	store  Store
	lines  []models.CartLine
	total  float64
}

func NewLedger(userID string, store Store) *Ledger {
	return &Ledger{userID: userID, store: store}
}

// Restore replaces the lines wholesale from the persisted copy. Used once
// when a session first touches its cart.
func (l *Ledger) Restore(ctx context.Context) error {
	lines, err := l.store.Load(ctx, l.userID)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = lines
	l.recompute()
	return nil
}

// Load replaces the lines wholesale and recomputes the total.
func (l *Ledger) Load(ctx context.Context, lines []models.CartLine) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append([]models.CartLine(nil), lines...)
	l.recompute()
	return l.persist(ctx)
}

// Add puts quantity units of item into the cart, merging with an existing
// line for the same item id.
func (l *Ledger) Add(ctx context.Context, item models.Item, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.find(item.ID); i >= 0 {
		l.lines[i].Quantity += quantity
	} else {
		l.lines = append(l.lines, models.CartLine{Item: item, Quantity: quantity})
	}
	l.recompute()
	return l.persist(ctx)
}

// Remove deletes the line for itemID. Removing an absent line is not an
// error.
func (l *Ledger) Remove(ctx context.Context, itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.find(itemID); i >= 0 {
		l.lines = append(l.lines[:i], l.lines[i+1:]...)
	}
	l.recompute()
	return l.persist(ctx)
}

// SetQuantity sets the absolute quantity of the line for itemID. A quantity
// of zero or less removes the line.
func (l *Ledger) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if quantity <= 0 {
		if i := l.find(itemID); i >= 0 {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		}
	} else if i := l.find(itemID); i >= 0 {
		l.lines[i].Quantity = quantity
	}
	l.recompute()
	return l.persist(ctx)
}

// Clear empties the ledger and erases the persisted copy.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	l.total = 0
	return l.store.Erase(ctx, l.userID)
}

// Snapshot returns a copy of the current lines and total.
func (l *Ledger) Snapshot() models.Cart {
	l.mu.Lock()
	defer l.mu.Unlock()
	return models.Cart{
		Lines:      append([]models.CartLine(nil), l.lines...),
		TotalPrice: l.total,
	}
}

func (l *Ledger) find(itemID string) int {
	for i, line := range l.lines {
		if line.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// recompute derives the total from the full line set every time rather
// than adjusting it incrementally. Callers must hold l.mu.
func (l *Ledger) recompute() {
	total := 0.0
	for _, line := range l.lines {
		total += line.Total()
	}
	l.total = total
}

func (l *Ledger) persist(ctx context.Context) error {
	return l.store.Save(ctx, l.userID, l.lines)
}
