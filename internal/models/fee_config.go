package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fee categories.
const (
	FeeCategoryP2P      = "p2p"
	FeeCategoryTransfer = "transfer"
	FeeCategoryCard     = "card"
)

// Fee types.
const (
	FeeTypePercentage = "percentage"
	FeeTypeFixed      = "fixed"
)

// FeeConfig is an administratively managed fee rule, unique per
// (category, user_type, name) and read-only at transfer time. MinFee and
// MaxFee only apply to percentage fees; an unset bound means no bound.
type FeeConfig struct {
	FeeConfigID uuid.UUID           `db:"fee_config_id" json:"fee_config_id"`
	Category    string              `db:"category" json:"category"`
	UserType    string              `db:"user_type" json:"user_type"`
	Name        string              `db:"name" json:"name"`
	FeeType     string              `db:"fee_type" json:"fee_type"`
	FeeValue    decimal.Decimal     `db:"fee_value" json:"fee_value"`
	MinFee      decimal.NullDecimal `db:"min_fee" json:"min_fee"`
	MaxFee      decimal.NullDecimal `db:"max_fee" json:"max_fee"`
	IsActive    bool                `db:"is_active" json:"is_active"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at" json:"updated_at"`
}
