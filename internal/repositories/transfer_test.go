package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithpay/wallet-ledger/internal/models"
)

func sampleTransfer() *models.Transfer {
	now := time.Now().UTC()
	return &models.Transfer{
		TransferID:        uuid.New(),
		IdempotencyKey:    "key-1",
		SenderUserID:      uuid.New(),
		RecipientUserID:   uuid.New(),
		SenderWalletID:    uuid.New(),
		RecipientWalletID: uuid.New(),
		Amount:            decimal.RequireFromString("100"),
		Fee:               decimal.RequireFromString("1.00"),
		NetAmount:         decimal.RequireFromString("99.00"),
		Currency:          "USD",
		Method:            models.TransferMethodP2P,
		Status:            models.TransferStatusCompleted,
		CreatedAt:         now,
		CompletedAt:       &now,
	}
}

func TestTransferRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferRepository(db)

	tr := sampleTransfer()

	mock.ExpectExec("INSERT INTO p2p_transfers").
		WithArgs(
			tr.TransferID, tr.IdempotencyKey, tr.SenderUserID, tr.RecipientUserID,
			tr.SenderWalletID, tr.RecipientWalletID, tr.Amount, tr.Fee, tr.NetAmount, tr.Currency,
			tr.Method, tr.Note, tr.Status, tr.ErrorCode, tr.ErrorMessage,
			tr.CompletedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), tr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepository_Save_DuplicateIdempotencyKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferRepository(db)

	tr := sampleTransfer()

	mock.ExpectExec("INSERT INTO p2p_transfers").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Save(context.Background(), tr)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func transferRows(tr *models.Transfer) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"transfer_id", "idempotency_key", "sender_user_id", "recipient_user_id",
		"sender_wallet_id", "recipient_wallet_id", "amount", "fee", "net_amount", "currency",
		"method", "note", "status", "error_code", "error_message",
		"created_at", "completed_at", "reversed_at",
	}).AddRow(
		tr.TransferID, tr.IdempotencyKey, tr.SenderUserID, tr.RecipientUserID,
		tr.SenderWalletID, tr.RecipientWalletID, tr.Amount.String(), tr.Fee.String(), tr.NetAmount.String(), tr.Currency,
		tr.Method, tr.Note, tr.Status, tr.ErrorCode, tr.ErrorMessage,
		tr.CreatedAt, tr.CompletedAt, tr.ReversedAt,
	)
}

func TestTransferRepository_GetByIdempotencyKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferRepository(db)

	tr := sampleTransfer()

	mock.ExpectQuery("SELECT (.+) FROM p2p_transfers WHERE idempotency_key").
		WithArgs("key-1").
		WillReturnRows(transferRows(tr))

	got, err := repo.GetByIdempotencyKey(context.Background(), "key-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, tr.TransferID, got.TransferID)
	assert.Equal(t, models.TransferStatusCompleted, got.Status)
	assert.True(t, got.Amount.Equal(tr.Amount))
	assert.True(t, got.NetAmount.Equal(tr.NetAmount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepository_GetByIdempotencyKey_Unknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM p2p_transfers WHERE idempotency_key").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByIdempotencyKey(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepository_MarkReversed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferRepository(db)

	transferID := uuid.New()
	reversedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE p2p_transfers SET status").
		WithArgs(transferID, models.TransferStatusReversed, reversedAt, models.TransferStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkReversed(context.Background(), transferID, reversedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepository_MarkReversed_NotCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferRepository(db)

	transferID := uuid.New()
	reversedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE p2p_transfers SET status").
		WithArgs(transferID, models.TransferStatusReversed, reversedAt, models.TransferStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkReversed(context.Background(), transferID, reversedAt)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
