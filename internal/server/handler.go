package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	eventsmemory "github.com/sheikh-saqib/cashconnect-ledger/internal/events/memory"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/ledger"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models"
	"github.com/shopspring/decimal"
)

type createAccountRequest struct {
	ID             string `json:"id"`
	Credential     string `json:"credential"`
	InitialBalance string `json:"initial_balance"`
}

type sessionRequest struct {
	ID         string `json:"id"`
	Credential string `json:"credential"`
}

type sessionResponse struct {
	AccountID     string `json:"account_id"`
	Authenticated bool   `json:"authenticated"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type transferRequest struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      string `json:"amount"`
}

type balanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

type eventsResponse struct {
	Events []eventsmemory.Message `json:"events"`
	Next   int                    `json:"next"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest[models.AccountSummary](w, r, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	initial := decimal.Zero
	if strings.TrimSpace(req.InitialBalance) != "" {
		parsed, err := ledger.ParseAmount(req.InitialBalance)
		if err != nil {
			writeErr[models.AccountSummary](w, r, err, start)
			return
		}
		initial = parsed
	}

	account, err := s.engine.CreateAccount(r.Context(), req.ID, req.Credential, initial)
	if err != nil {
		writeErr[models.AccountSummary](w, r, err, start)
		return
	}
	writeOK(w, r, http.StatusCreated, "Account created successfully", account, start)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)
	writeOK(w, r, http.StatusOK, "Accounts retrieved", s.engine.Accounts(), start)
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest[sessionResponse](w, r, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	if !s.engine.Authenticate(req.ID, req.Credential) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Incorrect account id or credential",
		})
		logResponse(r, http.StatusUnauthorized, nil, start)
		return
	}
	writeOK(w, r, http.StatusOK, "Authenticated", sessionResponse{AccountID: req.ID, Authenticated: true}, start)
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	s.moveFunds(w, r, "Deposit successful", s.engine.Deposit)
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	s.moveFunds(w, r, "Withdrawal successful", s.engine.Withdraw)
}

type singleAccountOp func(ctx context.Context, accountId string, amount decimal.Decimal) (decimal.Decimal, error)

func (s *Server) moveFunds(w http.ResponseWriter, r *http.Request, message string, op singleAccountOp) {
	start := time.Now()
	accountId := r.PathValue("id")

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest[balanceResponse](w, r, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		writeErr[balanceResponse](w, r, err, start)
		return
	}

	balance, err := op(r.Context(), accountId, amount)
	if err != nil {
		writeErr[balanceResponse](w, r, err, start)
		return
	}
	writeOK(w, r, http.StatusOK, message, balanceResponse{AccountID: accountId, Balance: balance}, start)
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest[models.Transaction](w, r, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		writeErr[models.Transaction](w, r, err, start)
		return
	}

	tx, err := s.engine.Transfer(r.Context(), req.FromAccount, req.ToAccount, amount)
	if err != nil {
		writeErr[models.Transaction](w, r, err, start)
		return
	}
	writeOK(w, r, http.StatusCreated, fmt.Sprintf("Transferred %s to %s successfully", amount.String(), tx.ToAccount), tx, start)
}

func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountId := r.PathValue("id")
	logRequest(r, nil)

	balance, err := s.engine.BalanceOf(accountId)
	if err != nil {
		writeErr[balanceResponse](w, r, err, start)
		return
	}
	writeOK(w, r, http.StatusOK, "Balance retrieved", balanceResponse{AccountID: accountId, Balance: balance}, start)
}

// history returns the full history, or the n most recent entries when ?recent is given.
// A bare ?recent uses the configured default.
func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountId := r.PathValue("id")
	logRequest(r, nil)

	query := r.URL.Query()
	if !query.Has("recent") {
		entries, err := s.engine.HistoryOf(accountId)
		if err != nil {
			writeErr[[]models.LedgerEntry](w, r, err, start)
			return
		}
		writeOK(w, r, http.StatusOK, "History retrieved", entries, start)
		return
	}

	n := s.recentLimit
	if raw := query.Get("recent"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			if err == nil {
				err = errors.New("recent must not be negative")
			}
			writeBadRequest[[]models.LedgerEntry](w, r, "invalid recent parameter", err, start)
			return
		}
		n = parsed
	}

	entries, err := s.engine.RecentHistoryOf(accountId, n)
	if err != nil {
		writeErr[[]models.LedgerEntry](w, r, err, start)
		return
	}
	writeOK(w, r, http.StatusOK, "Recent history retrieved", entries, start)
}

func (s *Server) pollEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	offset := 0
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			if err == nil {
				err = errors.New("since must not be negative")
			}
			writeBadRequest[eventsResponse](w, r, "invalid since parameter", err, start)
			return
		}
		offset = parsed
	}

	msgs, next := s.events.Since(offset)
	writeOK(w, r, http.StatusOK, "Events retrieved", eventsResponse{Events: msgs, Next: next}, start)
}
