package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	eventsmemory "github.com/sheikh-saqib/cashconnect-ledger/internal/events/memory"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/models/events"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/storage/memory"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

func newTestLedger(t *testing.T, opts ...Option) *Ledger {
	t.Helper()
	opts = append([]Option{WithBcryptCost(bcrypt.MinCost)}, opts...)
	return NewLedger(memory.NewMemoryAccountStore(), memory.NewMemoryTransactionLog(), opts...)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func mustCreate(t *testing.T, l *Ledger, id, credential, balance string) {
	t.Helper()
	if _, err := l.CreateAccount(context.Background(), id, credential, dec(t, balance)); err != nil {
		t.Fatalf("CreateAccount(%s): %v", id, err)
	}
}

func balanceOf(t *testing.T, l *Ledger, id string) decimal.Decimal {
	t.Helper()
	b, err := l.BalanceOf(id)
	if err != nil {
		t.Fatalf("BalanceOf(%s): %v", id, err)
	}
	return b
}

func history(t *testing.T, l *Ledger, id string) []models.LedgerEntry {
	t.Helper()
	h, err := l.HistoryOf(id)
	if err != nil {
		t.Fatalf("HistoryOf(%s): %v", id, err)
	}
	return h
}

func assertBalance(t *testing.T, l *Ledger, id, want string) {
	t.Helper()
	if got := balanceOf(t, l, id); !got.Equal(dec(t, want)) {
		t.Fatalf("balance(%s)=%s want=%s", id, got, want)
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.TransactionCompleted
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, _ string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event.(events.TransactionCompleted))
	return p.err
}

func TestExampleScenario(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "100.00")
	mustCreate(t, l, "bob", "4321", "0.00")

	bal, err := l.Deposit(ctx, "alice", dec(t, "50.00"))
	if err != nil {
		t.Fatal(err)
	}
	if !bal.Equal(dec(t, "150.00")) {
		t.Fatalf("deposit balance=%s want 150.00", bal)
	}

	if _, err := l.Transfer(ctx, "alice", "bob", dec(t, "150.00")); err != nil {
		t.Fatal(err)
	}
	assertBalance(t, l, "alice", "0.00")
	assertBalance(t, l, "bob", "150.00")

	if _, err := l.Withdraw(ctx, "alice", dec(t, "1.00")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	assertBalance(t, l, "alice", "0.00")
	assertBalance(t, l, "bob", "150.00")
}

func TestCreateAccountNegativeBalance(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.CreateAccount(context.Background(), "alice", "1234", dec(t, "-5.00"))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
	if _, err := l.BalanceOf("alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("account should not exist, got %v", err)
	}
	if _, err := l.HistoryOf("alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("history should not exist, got %v", err)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "10")

	tests := []struct {
		name       string
		id         string
		credential string
		balance    string
		want       error
	}{
		{"duplicate", "alice", "9999", "0", ErrDuplicateAccount},
		{"empty id", "  ", "1234", "0", ErrInvalidAccount},
		{"short credential", "bob", "123", "0", ErrInvalidCredential},
		{"non digit credential", "bob", "12a4", "0", ErrInvalidCredential},
		{"empty credential", "bob", "", "0", ErrInvalidCredential},
		{"sub cent balance", "bob", "1234", "1.005", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.CreateAccount(context.Background(), tt.id, tt.credential, dec(t, tt.balance))
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}

	// a duplicate attempt must not reset the original account
	assertBalance(t, l, "alice", "10")
	if !l.Authenticate("alice", "1234") {
		t.Fatal("original credential should still authenticate")
	}
}

func TestCreateAccountAnyCredentialWhenDigitsDisabled(t *testing.T) {
	l := newTestLedger(t, WithCredentialDigits(0))
	if _, err := l.CreateAccount(context.Background(), "alice", "correct horse", decimal.Zero); err != nil {
		t.Fatal(err)
	}
	if !l.Authenticate("alice", "correct horse") {
		t.Fatal("expected authentication to succeed")
	}
}

func TestAuthenticate(t *testing.T) {
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "0")

	tests := []struct {
		id, credential string
		want           bool
	}{
		{"alice", "1234", true},
		{"alice", "4321", false},
		{"alice", "", false},
		{"mallory", "1234", false},
	}
	for _, tt := range tests {
		if got := l.Authenticate(tt.id, tt.credential); got != tt.want {
			t.Errorf("Authenticate(%q, %q)=%v want %v", tt.id, tt.credential, got, tt.want)
		}
	}
}

func TestDepositWithdrawValidation(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "100")

	for _, amt := range []string{"0", "-1", "0.001"} {
		if _, err := l.Deposit(ctx, "alice", dec(t, amt)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Deposit(%s): want ErrInvalidAmount, got %v", amt, err)
		}
		if _, err := l.Withdraw(ctx, "alice", dec(t, amt)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Withdraw(%s): want ErrInvalidAmount, got %v", amt, err)
		}
	}
	if _, err := l.Deposit(ctx, "ghost", dec(t, "1")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := l.Withdraw(ctx, "ghost", dec(t, "1")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := l.Withdraw(ctx, "alice", dec(t, "100.01")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}

	assertBalance(t, l, "alice", "100")
	if h := history(t, l, "alice"); len(h) != 0 {
		t.Fatalf("failed operations must not log, got %+v", h)
	}
}

func TestWithdrawEntireBalance(t *testing.T) {
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "42.42")

	bal, err := l.Withdraw(context.Background(), "alice", dec(t, "42.42"))
	if err != nil {
		t.Fatal(err)
	}
	if !bal.IsZero() {
		t.Fatalf("balance=%s want 0", bal)
	}
}

func TestDepositWithdrawRoundTripIsExact(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "0.30")

	for i := 0; i < 1000; i++ {
		if _, err := l.Deposit(ctx, "alice", dec(t, "0.10")); err != nil {
			t.Fatal(err)
		}
		if _, err := l.Withdraw(ctx, "alice", dec(t, "0.10")); err != nil {
			t.Fatal(err)
		}
	}
	assertBalance(t, l, "alice", "0.30")
	if n := len(history(t, l, "alice")); n != 2000 {
		t.Fatalf("history len=%d want 2000", n)
	}
}

func TestTransferMovesFundsAndLogsBothSides(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l := newTestLedger(t, WithClock(func() time.Time { return at }))
	mustCreate(t, l, "x", "1111", "80.00")
	mustCreate(t, l, "y", "2222", "20.00")

	tx, err := l.Transfer(context.Background(), "x", "y", dec(t, "30.25"))
	if err != nil {
		t.Fatal(err)
	}
	assertBalance(t, l, "x", "49.75")
	assertBalance(t, l, "y", "50.25")
	if !tx.SenderBalance.Equal(dec(t, "49.75")) || !tx.ReceiverBalance.Equal(dec(t, "50.25")) {
		t.Fatalf("receipt balances unexpected: %+v", tx)
	}

	hx, hy := history(t, l, "x"), history(t, l, "y")
	if len(hx) != 1 || len(hy) != 1 {
		t.Fatalf("want one entry each, got x=%d y=%d", len(hx), len(hy))
	}
	sent, recv := hx[0], hy[0]
	if sent.Kind != models.EntryTransfer || sent.Counterparty != "y" {
		t.Fatalf("sender entry unexpected: %+v", sent)
	}
	if recv.Kind != models.EntryReceived || recv.Counterparty != "x" {
		t.Fatalf("receiver entry unexpected: %+v", recv)
	}
	if !sent.Amount.Equal(recv.Amount) || !sent.CreatedAt.Equal(recv.CreatedAt) || !sent.CreatedAt.Equal(at) {
		t.Fatalf("entries should share amount and timestamp: %+v %+v", sent, recv)
	}
	if sent.Reference != tx.ID || recv.Reference != tx.ID || sent.ID == recv.ID {
		t.Fatalf("references unexpected: tx=%s sent=%+v recv=%+v", tx.ID, sent, recv)
	}
}

func TestTransferFailuresLeaveStateUntouched(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "x", "1111", "10.00")
	mustCreate(t, l, "y", "2222", "5.00")

	tests := []struct {
		name     string
		from, to string
		amount   string
		want     error
	}{
		{"insufficient", "x", "y", "10.01", ErrInsufficientFunds},
		{"zero", "x", "y", "0", ErrInvalidAmount},
		{"negative", "x", "y", "-3", ErrInvalidAmount},
		{"self", "x", "x", "1", ErrInvalidTransfer},
		{"unknown sender", "ghost", "y", "1", ErrNotFound},
		{"unknown receiver", "x", "ghost", "1", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Transfer(ctx, tt.from, tt.to, dec(t, tt.amount)); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}

	assertBalance(t, l, "x", "10.00")
	assertBalance(t, l, "y", "5.00")
	if len(history(t, l, "x")) != 0 || len(history(t, l, "y")) != 0 {
		t.Fatal("failed transfers must not log")
	}
}

func TestRecentHistoryOf(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "0")

	for i := 1; i <= 7; i++ {
		if _, err := l.Deposit(ctx, "alice", decimal.NewFromInt(int64(i))); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := l.RecentHistoryOf("alice", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 5 {
		t.Fatalf("len=%d want 5", len(recent))
	}
	for i, e := range recent {
		want := decimal.NewFromInt(int64(7 - i))
		if !e.Amount.Equal(want) {
			t.Fatalf("recent[%d].Amount=%s want %s", i, e.Amount, want)
		}
	}

	all := history(t, l, "alice")
	if len(all) != 7 || !all[0].Amount.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("full history should be oldest first: %+v", all)
	}

	short, err := l.RecentHistoryOf("alice", 50)
	if err != nil || len(short) != 7 {
		t.Fatalf("want all 7 entries, got %d (%v)", len(short), err)
	}
	if _, err := l.RecentHistoryOf("ghost", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestNewAccountHasEmptyHistory(t *testing.T) {
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "500")

	h := history(t, l, "alice")
	if h == nil || len(h) != 0 {
		t.Fatalf("want empty non-nil history, got %#v", h)
	}
}

func TestAccountsSummary(t *testing.T) {
	l := newTestLedger(t)
	mustCreate(t, l, "carol", "3333", "3")
	mustCreate(t, l, "alice", "1111", "1")
	mustCreate(t, l, "bob", "2222", "2")

	got := l.Accounts()
	if len(got) != 3 {
		t.Fatalf("len=%d want 3", len(got))
	}
	for i, id := range []string{"alice", "bob", "carol"} {
		if got[i].ID != id || !got[i].Balance.Equal(decimal.NewFromInt(int64(i+1))) {
			t.Fatalf("summary[%d]=%+v", i, got[i])
		}
	}
}

func TestPublishesOneEventPerAffectedAccount(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	l := newTestLedger(t, WithPublisher(pub, ""))
	mustCreate(t, l, "x", "1111", "10")
	mustCreate(t, l, "y", "2222", "0")

	if _, err := l.Deposit(ctx, "x", dec(t, "5")); err != nil {
		t.Fatal(err)
	}
	tx, err := l.Transfer(ctx, "x", "y", dec(t, "15"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Withdraw(ctx, "x", dec(t, "1")); err == nil {
		t.Fatal("expected insufficient funds")
	}

	if len(pub.events) != 3 {
		t.Fatalf("events=%d want 3: %+v", len(pub.events), pub.events)
	}
	dep, sent, recv := pub.events[0], pub.events[1], pub.events[2]
	if dep.Kind != "Deposit" || !dep.Balance.Equal(dec(t, "15")) {
		t.Fatalf("deposit event unexpected: %+v", dep)
	}
	if sent.Reference != tx.ID || recv.Reference != tx.ID {
		t.Fatalf("transfer events should carry the receipt id: %+v %+v", sent, recv)
	}
	if sent.AccountID != "x" || !sent.Balance.IsZero() || recv.AccountID != "y" || !recv.Balance.Equal(dec(t, "15")) {
		t.Fatalf("transfer events unexpected: %+v %+v", sent, recv)
	}
}

func TestPublishFailureDoesNotUndoCommit(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker unavailable")}
	l := newTestLedger(t, WithPublisher(pub, "topic"))
	mustCreate(t, l, "alice", "1234", "0")

	if _, err := l.Deposit(context.Background(), "alice", dec(t, "1")); err != nil {
		t.Fatalf("publish failure leaked into result: %v", err)
	}
	assertBalance(t, l, "alice", "1")
}

func TestPublishSurvivesCancelledCaller(t *testing.T) {
	pub := eventsmemory.NewPublisher(0)
	l := newTestLedger(t, WithPublisher(pub, "topic"))
	mustCreate(t, l, "alice", "1234", "0")
	mustCreate(t, l, "bob", "4321", "0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Deposit(ctx, "alice", dec(t, "5")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Transfer(ctx, "alice", "bob", dec(t, "2")); err != nil {
		t.Fatal(err)
	}

	msgs, next := pub.Since(0)
	if len(msgs) != 3 || next != 3 {
		t.Fatalf("committed operations lost events: %+v", msgs)
	}
	if msgs[0].Key != "alice" || msgs[1].Key != "alice" || msgs[2].Key != "bob" {
		t.Fatalf("unexpected event keys: %+v", msgs)
	}
}

func TestOutOfRangeAmountsRejectedPromptly(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "10")
	mustCreate(t, l, "bob", "4321", "10")

	inputs := []string{
		"1e-400000000",
		"1e400000000",
		"-1e400000000",
		"1e30",
		"1234567890123456789012345678901",
		"0.001e-5",
	}
	for _, raw := range inputs {
		amount, err := ParseAmount(raw)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", raw, err)
		}

		done := make(chan error, 4)
		go func() {
			_, err := l.Deposit(ctx, "alice", amount)
			done <- err
			_, err = l.Withdraw(ctx, "alice", amount)
			done <- err
			_, err = l.Transfer(ctx, "alice", "bob", amount)
			done <- err
			_, err = l.CreateAccount(ctx, "carol", "1234", amount)
			done <- err
		}()
		for i := 0; i < 4; i++ {
			select {
			case err := <-done:
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("amount %q: want ErrInvalidAmount, got %v", raw, err)
				}
			case <-time.After(2 * time.Second):
				t.Fatalf("amount %q was not rejected in time", raw)
			}
		}
	}

	assertBalance(t, l, "alice", "10")
	assertBalance(t, l, "bob", "10")
}

func TestLargeAmountsWithinBoundsAccepted(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "alice", "1234", "0")

	for _, raw := range []string{"1e29", "99999999999999999999999999999.99", "1.500", "25e-1"} {
		amount, err := ParseAmount(raw)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := l.Deposit(ctx, "alice", amount); err != nil {
			t.Fatalf("Deposit(%s): %v", raw, err)
		}
	}
}

func TestConcurrentOppositeTransfersDoNotDeadlock(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	mustCreate(t, l, "x", "1111", "1000.00")
	mustCreate(t, l, "y", "2222", "1000.00")

	const n = 200
	forward, back := dec(t, "1.50"), dec(t, "0.50")
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := l.Transfer(ctx, "x", "y", forward)
			return err
		})
		g.Go(func() error {
			_, err := l.Transfer(ctx, "y", "x", back)
			return err
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("transfers deadlocked")
	}

	assertBalance(t, l, "x", "800.00")
	assertBalance(t, l, "y", "1200.00")
	if len(history(t, l, "x")) != 2*n || len(history(t, l, "y")) != 2*n {
		t.Fatal("every transfer should log on both sides")
	}
}

func TestConcurrentLoadKeepsBalancesNonNegative(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		mustCreate(t, l, id, "1234", "10.00")
	}

	three, one, four := dec(t, "3.00"), dec(t, "1.00"), dec(t, "4.00")
	var g errgroup.Group
	for i := 0; i < 400; i++ {
		from, to := ids[i%len(ids)], ids[(i*3+1)%len(ids)]
		g.Go(func() error {
			var err error
			switch i % 3 {
			case 0:
				_, err = l.Withdraw(ctx, from, three)
			case 1:
				_, err = l.Deposit(ctx, from, one)
			default:
				_, err = l.Transfer(ctx, from, to, four)
			}
			if err != nil && !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, ErrInvalidTransfer) {
				return fmt.Errorf("unexpected error: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	// replaying every history must reproduce the final balance exactly
	for _, id := range ids {
		bal := balanceOf(t, l, id)
		if bal.IsNegative() {
			t.Fatalf("balance(%s)=%s is negative", id, bal)
		}
		replayed := dec(t, "10.00")
		for _, e := range history(t, l, id) {
			switch e.Kind {
			case models.EntryDeposit, models.EntryReceived:
				replayed = replayed.Add(e.Amount)
			case models.EntryWithdraw, models.EntryTransfer:
				replayed = replayed.Sub(e.Amount)
			}
			if replayed.IsNegative() {
				t.Fatalf("history of %s passes through a negative balance", id)
			}
		}
		if !replayed.Equal(bal) {
			t.Fatalf("replayed(%s)=%s balance=%s", id, replayed, bal)
		}
	}
}

func TestAccountsNeverSeesHalfAppliedTransfer(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	ids := []string{"a", "b", "c", "d", "e"}
	for _, id := range ids {
		mustCreate(t, l, id, "1234", "100.00")
	}
	total := dec(t, "500.00")
	amounts := []decimal.Decimal{dec(t, "0.01"), dec(t, "7.25"), dec(t, "33.00")}

	stop := make(chan struct{})
	var observer errgroup.Group
	observer.Go(func() error {
		for snapshots := 0; ; snapshots++ {
			select {
			case <-stop:
				if snapshots == 0 {
					return errors.New("observer took no snapshots")
				}
				return nil
			default:
			}
			sum := decimal.Zero
			for _, a := range l.Accounts() {
				sum = sum.Add(a.Balance)
			}
			if !sum.Equal(total) {
				return fmt.Errorf("snapshot %d sums to %s, want %s", snapshots, sum, total)
			}
		}
	})

	var g errgroup.Group
	for i := 0; i < 600; i++ {
		from, to := ids[i%len(ids)], ids[(i*2+1)%len(ids)]
		amount := amounts[i%len(amounts)]
		g.Go(func() error {
			_, err := l.Transfer(ctx, from, to, amount)
			if err != nil && !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, ErrInvalidTransfer) {
				return err
			}
			return nil
		})
	}
	err := g.Wait()
	close(stop)
	if err != nil {
		t.Fatal(err)
	}
	if err := observer.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestParseAmount(t *testing.T) {
	if _, err := ParseAmount("abc"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
	got, err := ParseAmount(" 12.50 ")
	if err != nil || !got.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("ParseAmount=%s, %v", got, err)
	}
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", newError(KindNotFound, "bob"))
	if !errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("kind matching broken for %v", err)
	}
	if KindOf(err) != KindNotFound {
		t.Fatalf("KindOf=%q", KindOf(err))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatal("plain errors have no kind")
	}
	if got := newError(KindNotFound, "bob").Error(); got != "NotFound: bob" {
		t.Fatalf("Error()=%q", got)
	}
}
