package errs

import "errors"

// Error is a business outcome the ledger can decline with. Its Code is the
// stable identifier persisted to p2p_transfers.error_code and rendered to
// API clients; infrastructure failures are plain errors and never carry one.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrWalletNotFound  = newError("WALLET_NOT_FOUND", "wallet not found")
	ErrWalletInactive  = newError("WALLET_INACTIVE", "wallet is inactive")
	ErrWalletFrozen    = newError("WALLET_FROZEN", "wallet is frozen")
	ErrInsufficientFunds = newError("INSUFFICIENT_FUNDS", "insufficient funds")

	ErrSelfTransferNotAllowed = newError("SELF_TRANSFER_NOT_ALLOWED", "sender and recipient must differ")
	ErrCurrencyMismatch       = newError("CURRENCY_MISMATCH", "wallet currencies do not match")
	ErrInvalidAmount          = newError("INVALID_AMOUNT", "amount must be positive")

	ErrFeeConfigMissing   = newError("FEE_CONFIG_MISSING", "no active fee configuration")
	ErrLimitConfigMissing = newError("LIMIT_CONFIG_MISSING", "no active transfer limit configuration")

	ErrBelowMinimum               = newError("BELOW_MINIMUM", "amount is below the minimum transfer amount")
	ErrExceedsPerTransactionLimit = newError("EXCEEDS_PER_TRANSACTION_LIMIT", "amount exceeds the per-transaction limit")
	ErrExceedsDailyLimit          = newError("EXCEEDS_DAILY_LIMIT", "daily transfer limit exceeded")
	ErrExceedsMonthlyLimit        = newError("EXCEEDS_MONTHLY_LIMIT", "monthly transfer limit exceeded")

	ErrLinkNotFound       = newError("LINK_NOT_FOUND", "transfer link not found")
	ErrLinkExpired        = newError("LINK_EXPIRED", "transfer link has expired")
	ErrLinkAlreadyClaimed = newError("LINK_ALREADY_CLAIMED", "transfer link was already claimed")
	ErrLinkCancelled      = newError("LINK_CANCELLED", "transfer link was cancelled")
	ErrLinkNotClaimable   = newError("LINK_NOT_CLAIMABLE", "transfer link is bound to another recipient")

	ErrTransferNotFound     = newError("TRANSFER_NOT_FOUND", "transfer not found")
	ErrTransferNotReversible = newError("TRANSFER_NOT_REVERSIBLE", "only completed transfers can be reversed")

	ErrPermissionDenied = newError("PERMISSION_DENIED", "operation not permitted for this role")
)

var byCode = map[string]*Error{}

func init() {
	for _, e := range []*Error{
		ErrWalletNotFound, ErrWalletInactive, ErrWalletFrozen, ErrInsufficientFunds,
		ErrSelfTransferNotAllowed, ErrCurrencyMismatch, ErrInvalidAmount,
		ErrFeeConfigMissing, ErrLimitConfigMissing,
		ErrBelowMinimum, ErrExceedsPerTransactionLimit, ErrExceedsDailyLimit, ErrExceedsMonthlyLimit,
		ErrLinkNotFound, ErrLinkExpired, ErrLinkAlreadyClaimed, ErrLinkCancelled, ErrLinkNotClaimable,
		ErrTransferNotFound, ErrTransferNotReversible, ErrPermissionDenied,
	} {
		byCode[e.Code] = e
	}
}

// FromCode maps a persisted error code back to its business error, or nil
// for an unknown code.
func FromCode(code string) *Error {
	return byCode[code]
}

// IsBusiness reports whether err is a declinable business outcome rather
// than an infrastructure failure.
func IsBusiness(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// CodeOf returns the business error code, or empty string for
// infrastructure errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
