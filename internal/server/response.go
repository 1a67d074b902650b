package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sheikh-saqib/cashconnect-ledger/internal/commons"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/ledger"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps a ledger error kind onto an HTTP status.
func statusFor(err error) int {
	switch ledger.KindOf(err) {
	case ledger.KindInvalidAmount, ledger.KindInvalidAccount, ledger.KindInvalidCredential, ledger.KindInvalidTransfer:
		return http.StatusBadRequest
	case ledger.KindNotFound:
		return http.StatusNotFound
	case ledger.KindDuplicateAccount, ledger.KindInsufficientFunds:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeErr answers with the error kind as message and the detail as the only error line.
func writeErr[T any](w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	status := statusFor(err)
	var response commons.Response[T]

	var ledgerErr *ledger.Error
	switch {
	case errors.As(err, &ledgerErr):
		response = commons.ErrorResponse[T](string(ledgerErr.Kind), ledgerErr.Detail)
	default:
		logError(r, err, nil)
		response = commons.ErrorResponse[T]("internal error", "Unable to process request right now")
	}

	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func writeBadRequest[T any](w http.ResponseWriter, r *http.Request, message string, err error, start time.Time) {
	logError(r, err, nil)
	response := commons.ErrorResponse[T](message, err.Error())
	writeJSON(w, http.StatusBadRequest, response)
	logResponse(r, http.StatusBadRequest, response, start)
}

func writeOK[T any](w http.ResponseWriter, r *http.Request, status int, message string, data T, start time.Time) {
	response := commons.SuccessResponse(message, data)
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}
