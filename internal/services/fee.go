package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
	"github.com/zenithpay/wallet-ledger/internal/money"
)

// FeeConfigGetter reads the active fee configuration for a category/tier
// pair; nil means no configuration exists.
type FeeConfigGetter interface {
	GetActive(ctx context.Context, category, userType string) (*models.FeeConfig, error)
}

// FeeConfigCache caches fee configurations. A nil result is a miss.
type FeeConfigCache interface {
	GetFeeConfig(ctx context.Context, category, userType string) (*models.FeeConfig, error)
	SetFeeConfig(ctx context.Context, cfg *models.FeeConfig) error
}

// FeeService computes the platform fee owed for a transfer. Pure function of
// its inputs plus the config lookup; no side effects.
type FeeService struct {
	reader FeeConfigGetter
	cache  FeeConfigCache
}

// NewFeeService creates a fee engine. cache may be nil.
func NewFeeService(reader FeeConfigGetter, cache FeeConfigCache) *FeeService {
	return &FeeService{reader: reader, cache: cache}
}

// Compute returns the fee for amount under the active config for
// (category, userType), falling back to the category-wide all_users tier.
// Percentage fees are capped at max_fee first, then floored at min_fee;
// fixed fees ignore both bounds. The result is rounded half-up to minor
// units.
func (s *FeeService) Compute(ctx context.Context, amount decimal.Decimal, category, userType string) (decimal.Decimal, error) {
	cfg, err := s.lookup(ctx, category, userType)
	if err != nil {
		return decimal.Zero, err
	}
	if cfg == nil {
		cfg, err = s.lookup(ctx, category, models.TierAllUsers)
		if err != nil {
			return decimal.Zero, err
		}
	}
	if cfg == nil {
		logger.Log.Errorw("no active fee config", "category", category, "user_type", userType)
		return decimal.Zero, errs.ErrFeeConfigMissing
	}

	if cfg.FeeType == models.FeeTypeFixed {
		return money.Round(cfg.FeeValue), nil
	}

	fee := amount.Mul(cfg.FeeValue).Div(decimal.NewFromInt(100))
	if cfg.MaxFee.Valid && fee.GreaterThan(cfg.MaxFee.Decimal) {
		fee = cfg.MaxFee.Decimal
	}
	if cfg.MinFee.Valid && fee.LessThan(cfg.MinFee.Decimal) {
		fee = cfg.MinFee.Decimal
	}
	return money.Round(fee), nil
}

func (s *FeeService) lookup(ctx context.Context, category, userType string) (*models.FeeConfig, error) {
	if s.cache != nil {
		if cfg, err := s.cache.GetFeeConfig(ctx, category, userType); err == nil && cfg != nil {
			return cfg, nil
		}
	}

	cfg, err := s.reader.GetActive(ctx, category, userType)
	if err != nil {
		logger.Log.Errorw("failed to read fee config", "category", category, "user_type", userType, "error", err)
		return nil, err
	}

	if cfg != nil && s.cache != nil {
		if err := s.cache.SetFeeConfig(ctx, cfg); err != nil {
			logger.Log.Warnw("failed to cache fee config", "category", category, "user_type", userType, "error", err)
		}
	}
	return cfg, nil
}
