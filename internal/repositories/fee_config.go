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

// FeeConfigRepository reads administratively managed fee configurations.
// Writes happen through the admin surface, which is out of scope here.
type FeeConfigRepository struct {
	db *sqlx.DB
}

func NewFeeConfigRepository(db *sqlx.DB) *FeeConfigRepository {
	return &FeeConfigRepository{db: db}
}

// GetActive returns the active fee configuration for a (category, user tier)
// pair, or nil when none exists.
func (r *FeeConfigRepository) GetActive(ctx context.Context, category, userType string) (*models.FeeConfig, error) {
	const query = `
		SELECT fee_config_id, category, user_type, name, fee_type, fee_value,
		       min_fee, max_fee, is_active, created_at, updated_at
		FROM fee_configs
		WHERE category = $1 AND user_type = $2 AND is_active
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var cfg models.FeeConfig
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &cfg, query, category, userType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{category, userType},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
