package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithpay/wallet-ledger/internal/models"
)

func TestFeeConfigRepository_GetActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeeConfigRepository(db)

	cfgID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM fee_configs WHERE category").
		WithArgs(models.FeeCategoryP2P, models.TierStandard).
		WillReturnRows(sqlmock.NewRows([]string{
			"fee_config_id", "category", "user_type", "name", "fee_type", "fee_value",
			"min_fee", "max_fee", "is_active", "created_at", "updated_at",
		}).AddRow(cfgID, models.FeeCategoryP2P, models.TierStandard, "p2p standard", models.FeeTypePercentage, "1",
			"0.10", "50", true, now, now))

	cfg, err := repo.GetActive(context.Background(), models.FeeCategoryP2P, models.TierStandard)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, models.FeeTypePercentage, cfg.FeeType)
	assert.True(t, cfg.FeeValue.Equal(decimal.RequireFromString("1")))
	assert.True(t, cfg.MinFee.Valid)
	assert.True(t, cfg.MaxFee.Decimal.Equal(decimal.RequireFromString("50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeConfigRepository_GetActive_NoConfig(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeeConfigRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM fee_configs WHERE category").
		WillReturnError(sql.ErrNoRows)

	cfg, err := repo.GetActive(context.Background(), models.FeeCategoryP2P, models.TierAgent)
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferLimitRepository_GetActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferLimitRepository(db)

	limitID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM transfer_limits WHERE user_type").
		WithArgs(models.TierStandard).
		WillReturnRows(sqlmock.NewRows([]string{
			"transfer_limit_id", "user_type", "daily_limit", "monthly_limit",
			"per_transaction_limit", "min_amount", "is_active", "created_at", "updated_at",
		}).AddRow(limitID, models.TierStandard, "1000", "5000", "500", "0.01", true, now, now))

	limit, err := repo.GetActive(context.Background(), models.TierStandard)
	require.NoError(t, err)
	require.NotNil(t, limit)

	assert.True(t, limit.DailyLimit.Equal(decimal.RequireFromString("1000")))
	assert.True(t, limit.PerTransactionLimit.Equal(decimal.RequireFromString("500")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferLimitRepository_GetActive_NoConfig(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferLimitRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM transfer_limits WHERE user_type").
		WillReturnError(sql.ErrNoRows)

	limit, err := repo.GetActive(context.Background(), models.TierMerchant)
	require.NoError(t, err)
	assert.Nil(t, limit)
	assert.NoError(t, mock.ExpectationsWereMet())
}
