package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer link statuses. A link is terminal once claimed, expired or
// cancelled.
const (
	LinkStatusPending   = "pending"
	LinkStatusClaimed   = "claimed"
	LinkStatusExpired   = "expired"
	LinkStatusCancelled = "cancelled"
)

// TransferLink is a claimable, expiring payment request. RecipientID is set
// only when the sender pre-bound the link to a recipient. No funds move
// until claim time; TransferID back-references the transfer funded by the
// claim.
type TransferLink struct {
	LinkID      uuid.UUID       `db:"link_id"`
	Token       string          `db:"token"`
	SenderID    uuid.UUID       `db:"sender_id"`
	RecipientID *uuid.UUID      `db:"recipient_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Status      string          `db:"status"`
	ExpiresAt   time.Time       `db:"expires_at"`
	ClaimedAt   *time.Time      `db:"claimed_at"`
	TransferID  *uuid.UUID      `db:"p2p_transfer_id"`
	CreatedAt   time.Time       `db:"created_at"`
}
