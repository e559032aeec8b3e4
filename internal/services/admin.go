package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenithpay/wallet-ledger/internal/logger"
)

// WalletAdmin carries the operator-only wallet mutations.
type WalletAdmin interface {
	SetFrozen(ctx context.Context, walletID uuid.UUID, frozen bool, reason *string) error
	Deactivate(ctx context.Context, walletID uuid.UUID) error
}

// AdminService freezes, unfreezes and closes wallets. These operations are
// not exposed on the public API; callers pass the acting role and the
// service enforces the wallet:freeze grant itself.
type AdminService struct {
	authz   *AuthzService
	wallets WalletAdmin
}

func NewAdminService(authz *AuthzService, wallets WalletAdmin) *AdminService {
	return &AdminService{authz: authz, wallets: wallets}
}

// FreezeWallet blocks debits and non-refund credits on the wallet.
func (s *AdminService) FreezeWallet(ctx context.Context, role string, walletID uuid.UUID, reason string) error {
	if err := s.authz.Require(role, PermWalletFreeze); err != nil {
		return err
	}
	if err := s.wallets.SetFrozen(ctx, walletID, true, &reason); err != nil {
		return err
	}

	logger.Log.Infow("wallet frozen", "wallet_id", walletID, "reason", reason)
	return nil
}

// UnfreezeWallet lifts a freeze and clears its recorded reason.
func (s *AdminService) UnfreezeWallet(ctx context.Context, role string, walletID uuid.UUID) error {
	if err := s.authz.Require(role, PermWalletFreeze); err != nil {
		return err
	}
	if err := s.wallets.SetFrozen(ctx, walletID, false, nil); err != nil {
		return err
	}

	logger.Log.Infow("wallet unfrozen", "wallet_id", walletID)
	return nil
}

// CloseWallet deactivates the wallet. Balances and transfer history stay
// readable; the wallet row is never deleted.
func (s *AdminService) CloseWallet(ctx context.Context, role string, walletID uuid.UUID) error {
	if err := s.authz.Require(role, PermWalletFreeze); err != nil {
		return err
	}
	if err := s.wallets.Deactivate(ctx, walletID); err != nil {
		return err
	}

	logger.Log.Infow("wallet closed", "wallet_id", walletID)
	return nil
}
