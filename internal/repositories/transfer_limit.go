package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// TransferLimitRepository reads tier transfer limits. One active row exists
// per tier; writes happen through the admin surface.
type TransferLimitRepository struct {
	db *sqlx.DB
}

func NewTransferLimitRepository(db *sqlx.DB) *TransferLimitRepository {
	return &TransferLimitRepository{db: db}
}

// GetActive returns the active limits for a user tier, or nil when none
// exists.
func (r *TransferLimitRepository) GetActive(ctx context.Context, userType string) (*models.TransferLimit, error) {
	const query = `
		SELECT transfer_limit_id, user_type, daily_limit, monthly_limit,
		       per_transaction_limit, min_amount, is_active, created_at, updated_at
		FROM transfer_limits
		WHERE user_type = $1 AND is_active
		LIMIT 1
	`

	var limit models.TransferLimit
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &limit, query, userType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userType},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &limit, nil
}
