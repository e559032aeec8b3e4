package models

import (
	"time"

	"github.com/google/uuid"
)

// User tiers. The tier drives the active fee configuration and transfer
// limits, and doubles as the role for permission checks.
const (
	TierStandard  = "standard"
	TierAgent     = "agent"
	TierAgentPlus = "agent_plus"
	TierMerchant  = "merchant"
	TierAdmin     = "admin"

	// TierAllUsers is the fee-config fallback tier, never assigned to a user.
	TierAllUsers = "all_users"
)

// UserDB mirrors a row of the users table.
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	UserType     string    `db:"user_type"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
