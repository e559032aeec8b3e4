package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zenithpay/wallet-ledger/internal/errs"
)

// ErrorResponse is the error body returned by every handler.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Stable error code, e.g. EXCEEDS_DAILY_LIMIT
	Code string `json:"code,omitempty"`

	// Human-readable reason
	Error string `json:"error"`
}

// statusByCode maps business error codes to HTTP statuses. Anything not
// listed is an infrastructure failure and renders as a retryable 500.
var statusByCode = map[string]int{
	errs.ErrWalletNotFound.Code:   http.StatusNotFound,
	errs.ErrTransferNotFound.Code: http.StatusNotFound,
	errs.ErrLinkNotFound.Code:     http.StatusNotFound,

	errs.ErrSelfTransferNotAllowed.Code: http.StatusBadRequest,
	errs.ErrCurrencyMismatch.Code:       http.StatusBadRequest,
	errs.ErrInvalidAmount.Code:          http.StatusBadRequest,

	errs.ErrWalletInactive.Code:   http.StatusUnprocessableEntity,
	errs.ErrWalletFrozen.Code:     http.StatusUnprocessableEntity,
	errs.ErrInsufficientFunds.Code: http.StatusUnprocessableEntity,

	errs.ErrBelowMinimum.Code:               http.StatusUnprocessableEntity,
	errs.ErrExceedsPerTransactionLimit.Code: http.StatusUnprocessableEntity,
	errs.ErrExceedsDailyLimit.Code:          http.StatusUnprocessableEntity,
	errs.ErrExceedsMonthlyLimit.Code:        http.StatusUnprocessableEntity,

	errs.ErrFeeConfigMissing.Code:   http.StatusUnprocessableEntity,
	errs.ErrLimitConfigMissing.Code: http.StatusUnprocessableEntity,

	errs.ErrLinkExpired.Code:       http.StatusGone,
	errs.ErrLinkAlreadyClaimed.Code: http.StatusConflict,
	errs.ErrLinkCancelled.Code:      http.StatusConflict,
	errs.ErrLinkNotClaimable.Code:   http.StatusForbidden,

	errs.ErrTransferNotReversible.Code: http.StatusConflict,
	errs.ErrPermissionDenied.Code:      http.StatusForbidden,
}

// writeError renders err as JSON: a structured reason for business declines,
// a generic retryable error otherwise.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if code := errs.CodeOf(err); code != "" {
		status, ok := statusByCode[code]
		if !ok {
			status = http.StatusUnprocessableEntity
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ErrorResponse{Code: code, Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
}
