package cart

import (
	"context"
	"log"
	"sync"
)

// Manager hands out one Ledger per user, restoring the persisted lines the
// first time a session touches its cart.
type Manager struct {
	mu      sync.Mutex
	store   Store
	ledgers map[string]*Ledger
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, ledgers: make(map[string]*Ledger)}
}

// Ledger returns the cart ledger for userID, creating and restoring it on
// first use. A failed restore starts the session with an empty cart.
func (m *Manager) Ledger(ctx context.Context, userID string) *Ledger {
	m.mu.Lock()
	if l, ok := m.ledgers[userID]; ok {
		m.mu.Unlock()
		return l
	}
	l := NewLedger(userID, m.store)
	m.ledgers[userID] = l
	m.mu.Unlock()

	if err := l.Restore(ctx); err != nil {
		log.Printf("[cart.manager] failed to restore cart for %s: %v", userID, err)
	}
	return l
}

// Drop forgets the in-memory ledger for userID, e.g. on logout. The
// persisted copy is untouched unless the ledger was cleared first.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ledgers, userID)
}
