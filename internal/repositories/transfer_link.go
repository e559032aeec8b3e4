package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// TransferLinkRepository persists claimable payment links. Claim-time reads
// take the link's row lock so concurrent claims serialize on it.
type TransferLinkRepository struct {
	db *sqlx.DB
}

func NewTransferLinkRepository(db *sqlx.DB) *TransferLinkRepository {
	return &TransferLinkRepository{db: db}
}

const linkColumns = `
	link_id, token, sender_id, recipient_id, amount, currency, status,
	expires_at, claimed_at, p2p_transfer_id, created_at
`

// Save inserts a link row.
func (r *TransferLinkRepository) Save(ctx context.Context, link *models.TransferLink) error {
	query := `
		INSERT INTO transfer_links (
			link_id, token, sender_id, recipient_id, amount, currency, status,
			expires_at, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{
		link.LinkID, link.Token, link.SenderID, link.RecipientID,
		link.Amount, link.Currency, link.Status, link.ExpiresAt,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetByTokenForUpdate reads a link by token under a FOR UPDATE row lock, so
// only one of several concurrent claims proceeds at a time. Returns nil when
// the token is unknown.
func (r *TransferLinkRepository) GetByTokenForUpdate(ctx context.Context, token string) (*models.TransferLink, error) {
	const query = `
		SELECT ` + linkColumns + `
		FROM transfer_links
		WHERE token = $1
		FOR UPDATE
	`

	var link models.TransferLink
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &link, query, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{token},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// MarkClaimed transitions a pending link to claimed and records the funded
// transfer.
func (r *TransferLinkRepository) MarkClaimed(ctx context.Context, linkID, transferID uuid.UUID, claimedAt time.Time) error {
	query := `
		UPDATE transfer_links
		SET status = $2, claimed_at = $3, p2p_transfer_id = $4
		WHERE link_id = $1 AND status = $5
	`
	args := []any{linkID, models.LinkStatusClaimed, claimedAt, transferID, models.LinkStatusPending}

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

// MarkExpired lazily expires a pending link whose deadline passed.
func (r *TransferLinkRepository) MarkExpired(ctx context.Context, linkID uuid.UUID) error {
	return r.setStatus(ctx, linkID, models.LinkStatusExpired)
}

// MarkCancelled cancels a pending link on the sender's request.
func (r *TransferLinkRepository) MarkCancelled(ctx context.Context, linkID uuid.UUID) error {
	return r.setStatus(ctx, linkID, models.LinkStatusCancelled)
}

func (r *TransferLinkRepository) setStatus(ctx context.Context, linkID uuid.UUID, status string) error {
	query := `
		UPDATE transfer_links
		SET status = $2
		WHERE link_id = $1 AND status = $3
	`
	args := []any{linkID, status, models.LinkStatusPending}

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
