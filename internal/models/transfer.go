package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer statuses. The only transitions are pending→completed,
// pending→failed and completed→reversed.
const (
	TransferStatusPending   = "pending"
	TransferStatusCompleted = "completed"
	TransferStatusFailed    = "failed"
	TransferStatusReversed  = "reversed"
)

// Transfer methods.
const (
	TransferMethodP2P  = "p2p"
	TransferMethodLink = "transfer_link"
)

// Transfer is an immutable record of a P2P funds movement. NetAmount is the
// amount credited to the recipient after the platform fee. Rows are only
// ever mutated by the status transition to reversed.
type Transfer struct {
	TransferID        uuid.UUID       `db:"transfer_id"`
	IdempotencyKey    string          `db:"idempotency_key"`
	SenderUserID      uuid.UUID       `db:"sender_user_id"`
	RecipientUserID   uuid.UUID       `db:"recipient_user_id"`
	SenderWalletID    uuid.UUID       `db:"sender_wallet_id"`
	RecipientWalletID uuid.UUID       `db:"recipient_wallet_id"`
	Amount            decimal.Decimal `db:"amount"`
	Fee               decimal.Decimal `db:"fee"`
	NetAmount         decimal.Decimal `db:"net_amount"`
	Currency          string          `db:"currency"`
	Method            string          `db:"method"`
	Note              *string         `db:"note"`
	Status            string          `db:"status"`
	ErrorCode         *string         `db:"error_code"`
	ErrorMessage      *string         `db:"error_message"`
	CreatedAt         time.Time       `db:"created_at"`
	CompletedAt       *time.Time      `db:"completed_at"`
	ReversedAt        *time.Time      `db:"reversed_at"`
}
