package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the authoritative state of a single ledger account.
type Account struct {
	ID             string          // immutable once created
	CredentialHash []byte          // bcrypt hash of the account secret
	Balance        decimal.Decimal // never negative
	CreatedAt      time.Time
}

// AccountSummary is the public view of an account, safe to hand to callers.
type AccountSummary struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}
