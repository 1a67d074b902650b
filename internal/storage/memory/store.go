package memory

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	interfaces "github.com/sheikh-saqib/cashconnect-ledger/internal/interfaces"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models"
)

// MemoryAccountStore is an in-memory implementation of interfaces.AccountStore.
// It is safe for concurrent use; every read hands out a copy.
//
// The map lock only guards membership. Each record carries its own mutex, so
// Update holds just the records it touches while fn runs.
type MemoryAccountStore struct {
	mu       sync.RWMutex              // protects the accounts map
	accounts map[string]*accountRecord // account id -> authoritative record
}

type accountRecord struct {
	mu      sync.Mutex
	account *models.Account
}

// NewMemoryAccountStore creates an empty account store
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		accounts: make(map[string]*accountRecord),
	}
}

// Insert adds a new account. Fails with ErrAccountExists when the id is taken.
func (m *MemoryAccountStore) Insert(account models.Account) error {
	if account.Balance.IsNegative() {
		return interfaces.ErrNegativeBalance
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.ID]; exists {
		return interfaces.ErrAccountExists
	}
	m.accounts[account.ID] = &accountRecord{account: cloneAccount(&account)}
	return nil
}

func (m *MemoryAccountStore) record(accountId string) (*accountRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.accounts[accountId]
	return rec, exists
}

func (m *MemoryAccountStore) Get(accountId string) (models.Account, error) {
	rec, exists := m.record(accountId)
	if !exists {
		return models.Account{}, interfaces.ErrAccountNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return *cloneAccount(rec.account), nil
}

func (m *MemoryAccountStore) Exists(accountId string) bool {
	_, exists := m.record(accountId)
	return exists
}

// Update is the read-modify-write primitive. Nothing is written unless fn
// succeeds and every touched balance stays non-negative. Records are locked in
// id order; fn sees the accounts in the order the ids were given.
func (m *MemoryAccountStore) Update(accountIds []string, fn func(accounts []*models.Account) error) error {
	records := make([]*accountRecord, len(accountIds))
	for i, id := range accountIds {
		if slices.Contains(accountIds[:i], id) {
			return fmt.Errorf("update: account %q listed twice", id)
		}
		rec, exists := m.record(id)
		if !exists {
			return interfaces.ErrAccountNotFound
		}
		records[i] = rec
	}

	order := make([]int, len(accountIds))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return accountIds[order[a]] < accountIds[order[b]] })
	for _, i := range order {
		records[i].mu.Lock()
		defer records[i].mu.Unlock()
	}

	working := make([]*models.Account, len(records))
	for i, rec := range records {
		working[i] = cloneAccount(rec.account)
	}

	if err := fn(working); err != nil {
		return err
	}

	for _, a := range working {
		if a.Balance.IsNegative() {
			return interfaces.ErrNegativeBalance
		}
	}
	for i, rec := range records {
		rec.account = working[i]
	}
	return nil
}

// List returns a copy of every account ordered by id.
func (m *MemoryAccountStore) List() []models.Account {
	m.mu.RLock()
	records := make([]*accountRecord, 0, len(m.accounts))
	for _, rec := range m.accounts {
		records = append(records, rec)
	}
	m.mu.RUnlock()

	out := make([]models.Account, 0, len(records))
	for _, rec := range records {
		rec.mu.Lock()
		out = append(out, *cloneAccount(rec.account))
		rec.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneAccount(a *models.Account) *models.Account {
	cp := *a
	if a.CredentialHash != nil {
		cp.CredentialHash = append([]byte(nil), a.CredentialHash...)
	}
	return &cp
}

// Compile-time check: ensure MemoryAccountStore implements AccountStore interface
var _ interfaces.AccountStore = (*MemoryAccountStore)(nil)
