package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferLimit is the set of caps for a user tier: one active row per tier.
type TransferLimit struct {
	TransferLimitID     uuid.UUID       `db:"transfer_limit_id" json:"transfer_limit_id"`
	UserType            string          `db:"user_type" json:"user_type"`
	DailyLimit          decimal.Decimal `db:"daily_limit" json:"daily_limit"`
	MonthlyLimit        decimal.Decimal `db:"monthly_limit" json:"monthly_limit"`
	PerTransactionLimit decimal.Decimal `db:"per_transaction_limit" json:"per_transaction_limit"`
	MinAmount           decimal.Decimal `db:"min_amount" json:"min_amount"`
	IsActive            bool            `db:"is_active" json:"is_active"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}
