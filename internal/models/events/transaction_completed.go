package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCompleted is emitted once per affected account after an operation commits.
type TransactionCompleted struct {
	EventID      string          `json:"event_id"`
	Reference    string          `json:"reference"`
	Kind         string          `json:"kind"`
	AccountID    string          `json:"account_id"`
	Counterparty string          `json:"counterparty,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Balance      decimal.Decimal `json:"balance"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
