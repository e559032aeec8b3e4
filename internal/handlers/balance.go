package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// WalletReader reads the authenticated user's primary wallet.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
}

// BalanceResponse represents the user's wallet snapshot
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Wallet id
	WalletID string `json:"wallet_id"`

	// Currency
	// example: USD
	Currency string `json:"currency"`

	// Total balance
	// example: 100.00
	Balance string `json:"balance"`

	// Spendable portion of the balance
	// example: 90.00
	AvailableBalance string `json:"available_balance"`

	// Held, not yet spendable portion
	// example: 10.00
	PendingBalance string `json:"pending_balance"`

	// Whether the wallet is frozen
	IsFrozen bool `json:"is_frozen"`
}

// NewGetBalanceHandler returns an HTTP handler reading the authenticated
// user's wallet balance.
// @Summary Get wallet balance
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No wallet"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	wallets WalletReader,
	tokenGetter TransferTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		wallet, err := wallets.GetByUserID(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to read wallet", "user_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}
		if wallet == nil {
			writeError(w, errs.ErrWalletNotFound)
			return
		}

		resp := BalanceResponse{
			WalletID:         wallet.WalletID.String(),
			Currency:         wallet.Currency,
			Balance:          wallet.Balance.StringFixed(2),
			AvailableBalance: wallet.AvailableBalance.StringFixed(2),
			PendingBalance:   wallet.PendingBalance.StringFixed(2),
			IsFrozen:         wallet.IsFrozen,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
