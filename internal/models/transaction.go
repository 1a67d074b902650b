package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the receipt of a committed transfer between two accounts
type Transaction struct {
	ID              string          `json:"id"`
	FromAccount     string          `json:"from_account"`
	ToAccount       string          `json:"to_account"`
	Amount          decimal.Decimal `json:"amount"`
	SenderBalance   decimal.Decimal `json:"sender_balance"`
	ReceiverBalance decimal.Decimal `json:"receiver_balance"`
	CreatedAt       time.Time       `json:"created_at"`
}
