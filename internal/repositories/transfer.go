package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// pgUniqueViolation is the Postgres error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// ErrDuplicateKey is returned when an insert loses the race on the
// idempotency-key uniqueness constraint. The caller re-reads the winner.
var ErrDuplicateKey = errors.New("duplicate idempotency key")

// TransferRepository persists immutable transfer records. The only mutation
// ever applied to a row is the completed→reversed status transition.
type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

const transferColumns = `
	transfer_id, idempotency_key, sender_user_id, recipient_user_id,
	sender_wallet_id, recipient_wallet_id, amount, fee, net_amount, currency,
	method, note, status, error_code, error_message,
	created_at, completed_at, reversed_at
`

// Save inserts a transfer row. A unique violation on the idempotency key is
// reported as ErrDuplicateKey.
func (r *TransferRepository) Save(ctx context.Context, t *models.Transfer) error {
	query := `
		INSERT INTO p2p_transfers (
			transfer_id, idempotency_key, sender_user_id, recipient_user_id,
			sender_wallet_id, recipient_wallet_id, amount, fee, net_amount, currency,
			method, note, status, error_code, error_message,
			created_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), $16)
	`
	args := []any{
		t.TransferID, t.IdempotencyKey, t.SenderUserID, t.RecipientUserID,
		t.SenderWalletID, t.RecipientWalletID, t.Amount, t.Fee, t.NetAmount, t.Currency,
		t.Method, t.Note, t.Status, t.ErrorCode, t.ErrorMessage,
		t.CompletedAt,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateKey
	}
	return err
}

// GetByIdempotencyKey returns the transfer created under the given key, or
// nil when no attempt with that key exists.
func (r *TransferRepository) GetByIdempotencyKey(ctx context.Context, key string) (*models.Transfer, error) {
	const query = `
		SELECT ` + transferColumns + `
		FROM p2p_transfers
		WHERE idempotency_key = $1
	`

	var t models.Transfer
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &t, query, key)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID returns a transfer by id, or nil when it does not exist.
func (r *TransferRepository) GetByID(ctx context.Context, transferID uuid.UUID) (*models.Transfer, error) {
	const query = `
		SELECT ` + transferColumns + `
		FROM p2p_transfers
		WHERE transfer_id = $1
	`

	var t models.Transfer
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &t, query, transferID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transferID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkReversed applies the completed→reversed transition. Returns
// sql.ErrNoRows when the transfer is not in completed status.
func (r *TransferRepository) MarkReversed(ctx context.Context, transferID uuid.UUID, reversedAt time.Time) error {
	query := `
		UPDATE p2p_transfers
		SET status = $2, reversed_at = $3
		WHERE transfer_id = $1 AND status = $4
	`
	args := []any{transferID, models.TransferStatusReversed, reversedAt, models.TransferStatusCompleted}

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

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
