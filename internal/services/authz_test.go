package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

func TestAuthzService_Allowed(t *testing.T) {
	svc := NewAuthzService()

	tests := []struct {
		name string
		role string
		perm Permission
		want bool
	}{
		{"standard can transfer", models.TierStandard, PermTransferCreate, true},
		{"standard can claim links", models.TierStandard, PermLinkClaim, true},
		{"standard cannot reverse", models.TierStandard, PermTransferReverse, false},
		{"standard cannot freeze", models.TierStandard, PermWalletFreeze, false},
		{"merchant cannot reverse", models.TierMerchant, PermTransferReverse, false},
		{"admin can reverse", models.TierAdmin, PermTransferReverse, true},
		{"admin can freeze", models.TierAdmin, PermWalletFreeze, true},
		{"unknown role has nothing", "superuser", PermTransferCreate, false},
		{"all_users is not a role", models.TierAllUsers, PermTransferCreate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Allowed(tt.role, tt.perm))
		})
	}
}

func TestAuthzService_Require(t *testing.T) {
	svc := NewAuthzService()

	assert.NoError(t, svc.Require(models.TierAgent, PermLinkCreate))
	assert.ErrorIs(t, svc.Require(models.TierAgent, PermTransferReverse), errs.ErrPermissionDenied)
}
