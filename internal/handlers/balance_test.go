package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

func TestGetBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	tokener, token := testTokener(t, userID, models.TierStandard)

	wallet := &models.Wallet{
		WalletID:         uuid.New(),
		UserID:           &userID,
		Currency:         "USD",
		Balance:          decimal.RequireFromString("150"),
		AvailableBalance: decimal.RequireFromString("140"),
		PendingBalance:   decimal.RequireFromString("10"),
		IsActive:         true,
	}

	wallets := NewMockWalletReader(ctrl)
	wallets.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)

	handler := NewGetBalanceHandler(wallets, tokener)

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BalanceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, wallet.WalletID.String(), resp.WalletID)
	assert.Equal(t, "150.00", resp.Balance)
	assert.Equal(t, "140.00", resp.AvailableBalance)
	assert.Equal(t, "10.00", resp.PendingBalance)
	assert.False(t, resp.IsFrozen)
}

func TestGetBalanceHandler_NoWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	tokener, token := testTokener(t, userID, models.TierStandard)

	wallets := NewMockWalletReader(ctrl)
	wallets.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)

	handler := NewGetBalanceHandler(wallets, tokener)

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, errs.ErrWalletNotFound.Code, resp.Code)
}

func TestGetBalanceHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, _ := testTokener(t, uuid.New(), models.TierStandard)
	handler := NewGetBalanceHandler(NewMockWalletReader(ctrl), tokener)

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
