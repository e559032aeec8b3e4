package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// WalletRepository is the single point of truth for balance mutation. Debit
// and Credit are guarded single-statement updates, so the balance can never
// go negative regardless of what the service layer checked beforehand.
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

const walletColumns = `
	wallet_id, user_id, currency, balance, available_balance, pending_balance,
	daily_limit, monthly_limit, per_transaction_limit,
	is_active, is_frozen, frozen_reason, frozen_at, created_at, updated_at
`

// Create provisions a wallet with zero balances. Invoked by the onboarding
// service, never by the transfer path.
func (r *WalletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	query := `
		INSERT INTO wallets (
			wallet_id, user_id, currency, balance, available_balance, pending_balance,
			daily_limit, monthly_limit, per_transaction_limit,
			is_active, is_frozen, created_at, updated_at
		)
		VALUES ($1, $2, $3, 0, 0, 0, $4, $5, $6, TRUE, FALSE, NOW(), NOW())
	`
	args := []any{
		wallet.WalletID, wallet.UserID, wallet.Currency,
		wallet.DailyLimit, wallet.MonthlyLimit, wallet.PerTransactionLimit,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetByUserID retrieves a user's primary wallet. Returns nil when the user
// has no wallet.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	const query = `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1
	`

	var wallet models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// LockPair re-reads two wallets under FOR UPDATE row locks. Locks are always
// acquired in ascending wallet-id order regardless of transfer direction, so
// two opposite-direction transfers cannot deadlock each other.
func (r *WalletRepository) LockPair(ctx context.Context, a, b uuid.UUID) (map[uuid.UUID]*models.Wallet, error) {
	const query = `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE wallet_id IN ($1, $2)
		ORDER BY wallet_id
		FOR UPDATE
	`

	var rows []models.Wallet
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, a, b)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{a, b},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	locked := make(map[uuid.UUID]*models.Wallet, len(rows))
	for i := range rows {
		locked[rows[i].WalletID] = &rows[i]
	}
	return locked, nil
}

// Debit decrements balance and available_balance. The WHERE clause is the
// authoritative overdraft guard: when the spendable balance does not cover
// the amount no row matches and sql.ErrNoRows is returned.
func (r *WalletRepository) Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $2,
		    available_balance = available_balance - $2,
		    updated_at = NOW()
		WHERE wallet_id = $1
		  AND is_active
		  AND NOT is_frozen
		  AND available_balance >= $2
		RETURNING balance
	`
	args := []any{walletID, amount}

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Credit increments balance and available_balance. Frozen wallets only
// accept credits when allowFrozen is set (administrative reversals).
func (r *WalletRepository) Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, allowFrozen bool) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2,
		    available_balance = available_balance + $2,
		    updated_at = NOW()
		WHERE wallet_id = $1
		  AND is_active
		  AND (NOT is_frozen OR $3)
		RETURNING balance
	`
	args := []any{walletID, amount, allowFrozen}

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", balance,
		"error", err,
	)

	return balance, err
}

// SetFrozen freezes or unfreezes a wallet.
func (r *WalletRepository) SetFrozen(ctx context.Context, walletID uuid.UUID, frozen bool, reason *string) error {
	query := `
		UPDATE wallets
		SET is_frozen = $2,
		    frozen_reason = $3,
		    frozen_at = $4,
		    updated_at = NOW()
		WHERE wallet_id = $1
	`
	var frozenAt *time.Time
	if frozen {
		now := time.Now().UTC()
		frozenAt = &now
	}
	args := []any{walletID, frozen, reason, frozenAt}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Deactivate soft-deletes a wallet. Wallets are never hard-deleted.
func (r *WalletRepository) Deactivate(ctx context.Context, walletID uuid.UUID) error {
	query := `
		UPDATE wallets
		SET is_active = FALSE, updated_at = NOW()
		WHERE wallet_id = $1
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, walletID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
