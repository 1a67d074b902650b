package server

import (
	"context"

	eventsmemory "github.com/sheikh-saqib/cashconnect-ledger/internal/events/memory"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Engine is the ledger surface the HTTP layer needs.
type Engine interface {
	CreateAccount(ctx context.Context, accountId, credential string, initialBalance decimal.Decimal) (models.AccountSummary, error)
	Authenticate(accountId, credential string) bool
	Deposit(ctx context.Context, accountId string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountId string, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (models.Transaction, error)
	BalanceOf(accountId string) (decimal.Decimal, error)
	HistoryOf(accountId string) ([]models.LedgerEntry, error)
	RecentHistoryOf(accountId string, n int) ([]models.LedgerEntry, error)
	Accounts() []models.AccountSummary
}

// EventSource lets clients poll committed events. Optional.
type EventSource interface {
	Since(offset int) ([]eventsmemory.Message, int)
}

type Server struct {
	engine      Engine
	events      EventSource
	recentLimit int
}

func NewServer(engine Engine, events EventSource, recentLimit int) *Server {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &Server{engine: engine, events: events, recentLimit: recentLimit}
}
