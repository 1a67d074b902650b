package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind names the operation that produced a history entry.
type EntryKind string

const (
	EntryDeposit  EntryKind = "Deposit"
	EntryWithdraw EntryKind = "Withdraw"
	EntryTransfer EntryKind = "Transfer"
	EntryReceived EntryKind = "Received"
)

// LedgerEntry represents a single committed operation in an account's history
type LedgerEntry struct {
	ID           string          `json:"id"`
	Reference    string          `json:"reference"` // shared by both halves of a transfer
	AccountID    string          `json:"account_id"`
	Kind         EntryKind       `json:"kind"`
	Amount       decimal.Decimal `json:"amount"` // always positive
	Counterparty string          `json:"counterparty,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
