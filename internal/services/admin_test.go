package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

func TestAdminService_FreezeWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletAdmin(ctrl)
	svc := NewAdminService(NewAuthzService(), wallets)

	walletID := uuid.New()
	reason := "chargeback dispute"

	wallets.EXPECT().
		SetFrozen(gomock.Any(), walletID, true, &reason).
		Return(nil)

	err := svc.FreezeWallet(context.Background(), models.TierAdmin, walletID, reason)
	assert.NoError(t, err)
}

func TestAdminService_FreezeWallet_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletAdmin(ctrl)
	svc := NewAdminService(NewAuthzService(), wallets)

	err := svc.FreezeWallet(context.Background(), models.TierStandard, uuid.New(), "suspicious activity")
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestAdminService_UnfreezeWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletAdmin(ctrl)
	svc := NewAdminService(NewAuthzService(), wallets)

	walletID := uuid.New()
	wallets.EXPECT().
		SetFrozen(gomock.Any(), walletID, false, nil).
		Return(nil)

	err := svc.UnfreezeWallet(context.Background(), models.TierAdmin, walletID)
	assert.NoError(t, err)
}

func TestAdminService_CloseWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletAdmin(ctrl)
	svc := NewAdminService(NewAuthzService(), wallets)

	walletID := uuid.New()
	wallets.EXPECT().Deactivate(gomock.Any(), walletID).Return(nil)

	err := svc.CloseWallet(context.Background(), models.TierAdmin, walletID)
	assert.NoError(t, err)
}

func TestAdminService_CloseWallet_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletAdmin(ctrl)
	svc := NewAdminService(NewAuthzService(), wallets)

	err := svc.CloseWallet(context.Background(), models.TierMerchant, uuid.New())
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}
