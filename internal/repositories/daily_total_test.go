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

func TestDailyTotalRepository_RecordSend(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyTotalRepository(db)

	userID := uuid.New()
	at := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)
	amount := decimal.RequireFromString("100")

	mock.ExpectExec("INSERT INTO daily_transaction_totals (.+) ON CONFLICT").
		WithArgs(userID, models.DateOf(at), amount).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordSend(context.Background(), userID, at, amount)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyTotalRepository_RecordReceive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyTotalRepository(db)

	userID := uuid.New()
	at := time.Now().UTC()
	amount := decimal.RequireFromString("99.00")

	mock.ExpectExec("INSERT INTO daily_transaction_totals (.+) ON CONFLICT").
		WithArgs(userID, models.DateOf(at), amount).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordReceive(context.Background(), userID, at, amount)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyTotalRepository_GetDay(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyTotalRepository(db)

	userID := uuid.New()
	at := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	day := models.DateOf(at)

	mock.ExpectQuery("SELECT (.+) FROM daily_transaction_totals WHERE user_id").
		WithArgs(userID, day).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "date", "total_sent", "total_received", "transaction_count", "updated_at",
		}).AddRow(userID, day, "250.00", "40.00", 3, at))

	total, err := repo.GetDay(context.Background(), userID, at)
	require.NoError(t, err)
	require.NotNil(t, total)

	assert.True(t, total.TotalSent.Equal(decimal.RequireFromString("250.00")))
	assert.True(t, total.TotalReceived.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, 3, total.TransactionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyTotalRepository_GetDay_NoActivity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyTotalRepository(db)

	userID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM daily_transaction_totals WHERE user_id").
		WillReturnError(sql.ErrNoRows)

	total, err := repo.GetDay(context.Background(), userID, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyTotalRepository_SumSentForMonth(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyTotalRepository(db)

	userID := uuid.New()
	at := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	start := models.MonthStart(at)
	end := start.AddDate(0, 1, 0)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_sent\\), 0\\) FROM daily_transaction_totals").
		WithArgs(userID, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("4950.00"))

	sum, err := repo.SumSentForMonth(context.Background(), userID, at)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("4950.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
