package memory

import (
	"sync"

	interfaces "github.com/sheikh-saqib/cashconnect-ledger/internal/interfaces"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models"
)

// MemoryTransactionLog is an in-memory, append-only implementation of
// interfaces.TransactionLog. Insertion order is chronological order.
type MemoryTransactionLog struct {
	mu      sync.RWMutex                    // protects entries
	entries map[string][]models.LedgerEntry // account id -> history, oldest first
}

func NewMemoryTransactionLog() *MemoryTransactionLog {
	return &MemoryTransactionLog{
		entries: make(map[string][]models.LedgerEntry),
	}
}

// Open creates an empty history for the account. Opening twice keeps the existing history.
func (m *MemoryTransactionLog) Open(accountId string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[accountId]; !exists {
		m.entries[accountId] = make([]models.LedgerEntry, 0)
	}
}

// Append adds the entries to the end of their owners' histories as one unit.
func (m *MemoryTransactionLog) Append(entries ...models.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range entries {
		if _, exists := m.entries[e.AccountID]; !exists {
			return interfaces.ErrAccountNotFound
		}
	}
	for _, e := range entries {
		m.entries[e.AccountID] = append(m.entries[e.AccountID], e)
	}
	return nil
}

// Recent returns up to n entries, most recent first.
func (m *MemoryTransactionLog) Recent(accountId string, n int) []models.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.entries[accountId]
	if n <= 0 || len(history) == 0 {
		return []models.LedgerEntry{}
	}
	n = min(n, len(history))

	out := make([]models.LedgerEntry, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		out = append(out, history[i])
	}
	return out
}

// All returns a copy of the full history, oldest first.
func (m *MemoryTransactionLog) All(accountId string) []models.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	copied := make([]models.LedgerEntry, len(m.entries[accountId]))
	copy(copied, m.entries[accountId])
	return copied
}

func (m *MemoryTransactionLog) Len(accountId string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries[accountId])
}

var _ interfaces.TransactionLog = (*MemoryTransactionLog)(nil)
