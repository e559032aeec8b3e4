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

// DailyTotalRepository maintains per-(user, day) sent/received aggregates.
// Monthly usage is a range SUM over the same table rather than a separately
// maintained counter, so the two can never drift apart.
type DailyTotalRepository struct {
	db *sqlx.DB
}

func NewDailyTotalRepository(db *sqlx.DB) *DailyTotalRepository {
	return &DailyTotalRepository{db: db}
}

// RecordSend adds a completed transfer to the sender's daily totals.
func (r *DailyTotalRepository) RecordSend(ctx context.Context, userID uuid.UUID, date time.Time, amount decimal.Decimal) error {
	query := `
		INSERT INTO daily_transaction_totals (user_id, date, total_sent, total_received, transaction_count, updated_at)
		VALUES ($1, $2, $3, 0, 1, NOW())
		ON CONFLICT (user_id, date)
		DO UPDATE SET total_sent = daily_transaction_totals.total_sent + EXCLUDED.total_sent,
		              transaction_count = daily_transaction_totals.transaction_count + 1,
		              updated_at = NOW()
	`
	args := []any{userID, models.DateOf(date), amount}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// RecordReceive adds a completed transfer to the recipient's daily totals.
func (r *DailyTotalRepository) RecordReceive(ctx context.Context, userID uuid.UUID, date time.Time, amount decimal.Decimal) error {
	query := `
		INSERT INTO daily_transaction_totals (user_id, date, total_sent, total_received, transaction_count, updated_at)
		VALUES ($1, $2, 0, $3, 0, NOW())
		ON CONFLICT (user_id, date)
		DO UPDATE SET total_received = daily_transaction_totals.total_received + EXCLUDED.total_received,
		              updated_at = NOW()
	`
	args := []any{userID, models.DateOf(date), amount}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetDay returns the totals row for a user's calendar day, or nil when the
// user has no activity that day.
func (r *DailyTotalRepository) GetDay(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyTotal, error) {
	const query = `
		SELECT user_id, date, total_sent, total_received, transaction_count, updated_at
		FROM daily_transaction_totals
		WHERE user_id = $1 AND date = $2
	`

	var total models.DailyTotal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, query, userID, models.DateOf(date))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, models.DateOf(date)},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &total, nil
}

// SumSentForMonth sums total_sent over the calendar month containing the
// given time.
func (r *DailyTotalRepository) SumSentForMonth(ctx context.Context, userID uuid.UUID, month time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total_sent), 0)
		FROM daily_transaction_totals
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`

	start := models.MonthStart(month)
	end := start.AddDate(0, 1, 0)

	var sum decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &sum, query, userID, start, end)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, start, end},
		"result", sum,
		"error", err,
	)

	return sum, err
}
