package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds a balance in a single currency for a user or organization.
// UserID is nil for organization-owned wallets. Balance always equals
// AvailableBalance + PendingBalance and is mutated only through the ledger
// repository; wallets are soft-deactivated, never deleted.
type Wallet struct {
	WalletID            uuid.UUID           `db:"wallet_id"`
	UserID              *uuid.UUID          `db:"user_id"`
	Currency            string              `db:"currency"`
	Balance             decimal.Decimal     `db:"balance"`
	AvailableBalance    decimal.Decimal     `db:"available_balance"`
	PendingBalance      decimal.Decimal     `db:"pending_balance"`
	DailyLimit          decimal.NullDecimal `db:"daily_limit"`
	MonthlyLimit        decimal.NullDecimal `db:"monthly_limit"`
	PerTransactionLimit decimal.NullDecimal `db:"per_transaction_limit"`
	IsActive            bool                `db:"is_active"`
	IsFrozen            bool                `db:"is_frozen"`
	FrozenReason        *string             `db:"frozen_reason"`
	FrozenAt            *time.Time          `db:"frozen_at"`
	CreatedAt           time.Time           `db:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at"`
}
