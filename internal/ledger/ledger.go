package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/cashconnect-ledger/internal/interfaces"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/logger"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models/events"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCredentialDigits = 4
	DefaultAmountScale      = 2
	DefaultTopic            = "ledger.transactions"

	// MaxIntegerDigits bounds the integer part of any single amount.
	MaxIntegerDigits = 30

	publishTimeout = 5 * time.Second
)

// Ledger is the engine in front of the account store and the transaction log.
// Each account's (balance, history) pair is guarded by its own mutex; operations
// touching two accounts take both mutexes in account id order.
type Ledger struct {
	store     interfaces.AccountStore
	log       interfaces.TransactionLog
	publisher interfaces.EventPublisher
	topic     string
	now       func() time.Time

	credentialDigits int
	amountScale      int32
	bcryptCost       int

	muMap map[string]*sync.Mutex // stores the *sync.Mutex for each account in a map
	mapMu sync.Mutex             // protects the muMap itself
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPublisher sends a TransactionCompleted event per affected account after each commit.
func WithPublisher(p interfaces.EventPublisher, topic string) Option {
	return func(l *Ledger) {
		l.publisher = p
		if topic != "" {
			l.topic = topic
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithCredentialDigits sets the exact credential length. Zero accepts any non-empty credential.
func WithCredentialDigits(n int) Option {
	return func(l *Ledger) { l.credentialDigits = n }
}

// WithAmountScale sets the number of decimal places of the smallest currency unit.
func WithAmountScale(scale int32) Option {
	return func(l *Ledger) { l.amountScale = scale }
}

func WithBcryptCost(cost int) Option {
	return func(l *Ledger) { l.bcryptCost = cost }
}

// NewLedger creates a ledger over the given store and log.
func NewLedger(store interfaces.AccountStore, log interfaces.TransactionLog, opts ...Option) *Ledger {
	l := &Ledger{
		store:            store,
		log:              log,
		topic:            DefaultTopic,
		now:              time.Now,
		credentialDigits: DefaultCredentialDigits,
		amountScale:      DefaultAmountScale,
		bcryptCost:       bcrypt.DefaultCost,
		muMap:            make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) getAccountLock(accountId string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[accountId]; !exists {
		l.muMap[accountId] = &sync.Mutex{}
	}
	return l.muMap[accountId]
}

// lockAccounts locks every distinct id in ascending order and returns the matching unlock.
func (l *Ledger) lockAccounts(accountIds ...string) func() {
	ids := slices.Clone(accountIds)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	locks := make([]*sync.Mutex, len(ids))
	for i, id := range ids {
		locks[i] = l.getAccountLock(id)
		locks[i].Lock()
	}
	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

// CreateAccount opens a new account with the given credential and starting balance.
func (l *Ledger) CreateAccount(ctx context.Context, accountId, credential string, initialBalance decimal.Decimal) (models.AccountSummary, error) {
	if strings.TrimSpace(accountId) == "" {
		return models.AccountSummary{}, newError(KindInvalidAccount, "account id is required")
	}
	if err := l.validateCredential(credential); err != nil {
		return models.AccountSummary{}, err
	}
	if initialBalance.IsNegative() {
		return models.AccountSummary{}, newError(KindInvalidAmount, "initial balance cannot be negative")
	}
	if err := l.validateScale(initialBalance); err != nil {
		return models.AccountSummary{}, err
	}
	if l.store.Exists(accountId) {
		return models.AccountSummary{}, newError(KindDuplicateAccount, accountId)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), l.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.AccountSummary{}, newError(KindInvalidCredential, "credential too long")
		}
		return models.AccountSummary{}, fmt.Errorf("hash credential: %w", err)
	}

	account := models.Account{
		ID:             accountId,
		CredentialHash: hash,
		Balance:        initialBalance,
		CreatedAt:      l.now(),
	}

	unlock := l.lockAccounts(accountId)
	err = l.store.Insert(account)
	if err == nil {
		l.log.Open(accountId)
	}
	unlock()

	if err != nil {
		return models.AccountSummary{}, translateStoreError(err, accountId)
	}
	return models.AccountSummary{ID: accountId, Balance: initialBalance}, nil
}

// Authenticate reports whether the account exists and the credential matches it.
func (l *Ledger) Authenticate(accountId, credential string) bool {
	account, err := l.store.Get(accountId)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword(account.CredentialHash, []byte(credential)) == nil
}

// Deposit credits the account and returns its new balance.
func (l *Ledger) Deposit(ctx context.Context, accountId string, amount decimal.Decimal) (decimal.Decimal, error) {
	return l.applySingle(ctx, accountId, amount, models.EntryDeposit)
}

// Withdraw debits the account and returns its new balance.
func (l *Ledger) Withdraw(ctx context.Context, accountId string, amount decimal.Decimal) (decimal.Decimal, error) {
	return l.applySingle(ctx, accountId, amount, models.EntryWithdraw)
}

func (l *Ledger) applySingle(ctx context.Context, accountId string, amount decimal.Decimal, kind models.EntryKind) (decimal.Decimal, error) {
	if err := l.validateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if !l.store.Exists(accountId) {
		return decimal.Zero, newError(KindNotFound, accountId)
	}

	var (
		balance decimal.Decimal
		entry   models.LedgerEntry
	)
	unlock := l.lockAccounts(accountId)
	err := l.commit([]string{accountId}, func(accounts []*models.Account) ([]models.LedgerEntry, error) {
		a := accounts[0]
		switch kind {
		case models.EntryDeposit:
			a.Balance = a.Balance.Add(amount)
		case models.EntryWithdraw:
			if a.Balance.LessThan(amount) {
				return nil, newError(KindInsufficientFunds, fmt.Sprintf("balance %s is below %s", a.Balance.StringFixed(l.amountScale), amount.StringFixed(l.amountScale)))
			}
			a.Balance = a.Balance.Sub(amount)
		}
		balance = a.Balance
		entry = l.newEntry(uuid.NewString(), accountId, kind, amount, "")
		return []models.LedgerEntry{entry}, nil
	})
	unlock()

	if err != nil {
		return decimal.Zero, translateStoreError(err, accountId)
	}

	l.publish(ctx, completedEvent(entry, balance))
	return balance, nil
}

// Transfer moves amount from one account to another. The debit, the credit and
// both history entries commit together or not at all.
func (l *Ledger) Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (models.Transaction, error) {
	if err := l.validateAmount(amount); err != nil {
		return models.Transaction{}, err
	}
	if fromAccount == toAccount {
		return models.Transaction{}, newError(KindInvalidTransfer, "cannot transfer to the same account")
	}
	if !l.store.Exists(fromAccount) {
		return models.Transaction{}, newError(KindNotFound, "sender "+fromAccount)
	}
	if !l.store.Exists(toAccount) {
		return models.Transaction{}, newError(KindNotFound, "receiver "+toAccount)
	}

	var (
		tx            models.Transaction
		debit, credit models.LedgerEntry
	)
	unlock := l.lockAccounts(fromAccount, toAccount)
	err := l.commit([]string{fromAccount, toAccount}, func(accounts []*models.Account) ([]models.LedgerEntry, error) {
		sender, receiver := accounts[0], accounts[1]
		if sender.Balance.LessThan(amount) {
			return nil, newError(KindInsufficientFunds, fmt.Sprintf("sender balance %s is below %s", sender.Balance.StringFixed(l.amountScale), amount.StringFixed(l.amountScale)))
		}
		sender.Balance = sender.Balance.Sub(amount)
		receiver.Balance = receiver.Balance.Add(amount)

		reference := uuid.NewString()
		debit = l.newEntry(reference, fromAccount, models.EntryTransfer, amount, toAccount)
		credit = debit
		credit.ID = uuid.NewString()
		credit.AccountID = toAccount
		credit.Kind = models.EntryReceived
		credit.Counterparty = fromAccount

		tx = models.Transaction{
			ID:              reference,
			FromAccount:     fromAccount,
			ToAccount:       toAccount,
			Amount:          amount,
			SenderBalance:   sender.Balance,
			ReceiverBalance: receiver.Balance,
			CreatedAt:       debit.CreatedAt,
		}
		return []models.LedgerEntry{debit, credit}, nil
	})
	unlock()

	if err != nil {
		return models.Transaction{}, translateStoreError(err, fromAccount)
	}

	l.publish(ctx,
		completedEvent(debit, tx.SenderBalance),
		completedEvent(credit, tx.ReceiverBalance),
	)
	return tx, nil
}

// BalanceOf returns the current balance of the account.
func (l *Ledger) BalanceOf(accountId string) (decimal.Decimal, error) {
	if !l.store.Exists(accountId) {
		return decimal.Zero, newError(KindNotFound, accountId)
	}
	unlock := l.lockAccounts(accountId)
	defer unlock()

	account, err := l.store.Get(accountId)
	if err != nil {
		return decimal.Zero, translateStoreError(err, accountId)
	}
	return account.Balance, nil
}

// HistoryOf returns the full history of the account, oldest first.
func (l *Ledger) HistoryOf(accountId string) ([]models.LedgerEntry, error) {
	if !l.store.Exists(accountId) {
		return nil, newError(KindNotFound, accountId)
	}
	unlock := l.lockAccounts(accountId)
	defer unlock()

	return l.log.All(accountId), nil
}

// RecentHistoryOf returns at most n entries of the account, most recent first.
func (l *Ledger) RecentHistoryOf(accountId string, n int) ([]models.LedgerEntry, error) {
	if !l.store.Exists(accountId) {
		return nil, newError(KindNotFound, accountId)
	}
	unlock := l.lockAccounts(accountId)
	defer unlock()

	return l.log.Recent(accountId, n), nil
}

// Accounts returns every account with its balance, ordered by id. All account
// locks are held while reading so no transfer is observed half-applied.
func (l *Ledger) Accounts() []models.AccountSummary {
	listed := l.store.List()
	ids := make([]string, len(listed))
	for i, a := range listed {
		ids[i] = a.ID
	}

	unlock := l.lockAccounts(ids...)
	defer unlock()

	out := make([]models.AccountSummary, 0, len(ids))
	for _, id := range ids {
		a, err := l.store.Get(id)
		if err != nil {
			continue
		}
		out = append(out, models.AccountSummary{ID: a.ID, Balance: a.Balance})
	}
	return out
}

// commit runs fn inside the store's read-modify-write and appends the entries
// it returns to the log before the new balances are written back.
func (l *Ledger) commit(accountIds []string, fn func(accounts []*models.Account) ([]models.LedgerEntry, error)) error {
	return l.store.Update(accountIds, func(accounts []*models.Account) error {
		entries, err := fn(accounts)
		if err != nil {
			return err
		}
		for _, a := range accounts {
			if a.Balance.IsNegative() {
				return interfaces.ErrNegativeBalance
			}
		}
		return l.log.Append(entries...)
	})
}

func (l *Ledger) newEntry(reference, accountId string, kind models.EntryKind, amount decimal.Decimal, counterparty string) models.LedgerEntry {
	return models.LedgerEntry{
		ID:           uuid.NewString(),
		Reference:    reference,
		AccountID:    accountId,
		Kind:         kind,
		Amount:       amount,
		Counterparty: counterparty,
		CreatedAt:    l.now(),
	}
}

func (l *Ledger) validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return newError(KindInvalidAmount, "amount must be positive")
	}
	return l.validateScale(amount)
}

// validateScale rejects amounts with too many integer digits or more decimal
// places than the amount scale. Both bounds are decided from the exponent and
// coefficient length first, so an input like 1e-400000000 never gets rescaled.
func (l *Ledger) validateScale(amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	exp := int64(amount.Exponent())
	digits := int64(len(amount.Coefficient().Text(10)))
	if amount.Sign() < 0 {
		digits--
	}
	if exp+digits > MaxIntegerDigits {
		return newError(KindInvalidAmount, fmt.Sprintf("amount has more than %d integer digits", MaxIntegerDigits))
	}
	if exp < -(int64(l.amountScale) + digits) {
		return newError(KindInvalidAmount, fmt.Sprintf("amount has more than %d decimal places", l.amountScale))
	}
	if !amount.Truncate(l.amountScale).Equal(amount) {
		return newError(KindInvalidAmount, fmt.Sprintf("amount has more than %d decimal places", l.amountScale))
	}
	return nil
}

func (l *Ledger) validateCredential(credential string) error {
	if credential == "" {
		return newError(KindInvalidCredential, "credential is required")
	}
	if l.credentialDigits <= 0 {
		return nil
	}
	if len(credential) != l.credentialDigits {
		return newError(KindInvalidCredential, fmt.Sprintf("credential must be %d digits", l.credentialDigits))
	}
	for _, r := range credential {
		if r < '0' || r > '9' {
			return newError(KindInvalidCredential, fmt.Sprintf("credential must be %d digits", l.credentialDigits))
		}
	}
	return nil
}

// publish runs detached from the caller's cancellation: once a commit stands,
// its events go out even if the request that made it has gone away.
func (l *Ledger) publish(ctx context.Context, evts ...events.TransactionCompleted) {
	if l.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	for _, ev := range evts {
		if err := l.publisher.Publish(ctx, l.topic, ev.AccountID, ev); err != nil {
			logger.Error("ledger publish transaction completed failed", err, logger.Fields{
				"eventId":   ev.EventID,
				"reference": ev.Reference,
				"accountId": ev.AccountID,
				"kind":      ev.Kind,
			})
		}
	}
}

func completedEvent(entry models.LedgerEntry, balance decimal.Decimal) events.TransactionCompleted {
	return events.TransactionCompleted{
		EventID:      uuid.NewString(),
		Reference:    entry.Reference,
		Kind:         string(entry.Kind),
		AccountID:    entry.AccountID,
		Counterparty: entry.Counterparty,
		Amount:       entry.Amount,
		Balance:      balance,
		OccurredAt:   entry.CreatedAt,
	}
}

// translateStoreError maps storage contract errors onto ledger kinds.
func translateStoreError(err error, accountId string) error {
	var ledgerErr *Error
	switch {
	case errors.As(err, &ledgerErr):
		return ledgerErr
	case errors.Is(err, interfaces.ErrAccountNotFound):
		return newError(KindNotFound, accountId)
	case errors.Is(err, interfaces.ErrAccountExists):
		return newError(KindDuplicateAccount, accountId)
	case errors.Is(err, interfaces.ErrNegativeBalance):
		return newError(KindInsufficientFunds, accountId)
	default:
		return fmt.Errorf("ledger store: %w", err)
	}
}

// ParseAmount parses a user-supplied amount. Non-numeric input is an InvalidAmount error;
// sign and precision are checked by the operation that receives the amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, newError(KindInvalidAmount, fmt.Sprintf("%q is not a number", raw))
	}
	return amount, nil
}
