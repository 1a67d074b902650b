package interfaces

import (
	"errors"

	"github.com/sheikh-saqib/cashconnect-ledger/internal/models"
)

// Storage contract errors. The engine translates these into ledger error kinds.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrNegativeBalance = errors.New("balance would become negative")
)

// AccountStore owns every Account record.
type AccountStore interface {
	Insert(account models.Account) error
	Get(accountId string) (models.Account, error)
	Exists(accountId string) bool
	// Update loads the named accounts, hands copies to fn in the same order and
	// writes them back only if fn returns nil and no balance is negative.
	Update(accountIds []string, fn func(accounts []*models.Account) error) error
	List() []models.Account
}

// TransactionLog owns the append-only history of every account.
type TransactionLog interface {
	Open(accountId string)
	// Append adds every entry to its owner's history, or none of them if any
	// owner was never opened.
	Append(entries ...models.LedgerEntry) error
	Recent(accountId string, n int) []models.LedgerEntry
	All(accountId string) []models.LedgerEntry
	Len(accountId string) int
}
