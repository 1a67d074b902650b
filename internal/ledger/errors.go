package ledger

import "errors"

// Kind is the stable, machine-readable category of a ledger error.
type Kind string

const (
	KindDuplicateAccount  Kind = "DuplicateAccount"
	KindInvalidAmount     Kind = "InvalidAmount"
	KindNotFound          Kind = "NotFound"
	KindInsufficientFunds Kind = "InsufficientFunds"
	KindInvalidTransfer   Kind = "InvalidTransfer"
	KindInvalidAccount    Kind = "InvalidAccount"
	KindInvalidCredential Kind = "InvalidCredential"
)

// Error is the typed result of a rejected ledger operation.
type Error struct {
	Kind   Kind
	Detail string // optional human-readable context
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Detail
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) ignores the detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrDuplicateAccount  = &Error{Kind: KindDuplicateAccount}
	ErrInvalidAmount     = &Error{Kind: KindInvalidAmount}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
	ErrInvalidTransfer   = &Error{Kind: KindInvalidTransfer}
	ErrInvalidAccount    = &Error{Kind: KindInvalidAccount}
	ErrInvalidCredential = &Error{Kind: KindInvalidCredential}
)

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// KindOf returns the kind of a ledger error anywhere in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
