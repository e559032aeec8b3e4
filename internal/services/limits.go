package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// TransferLimitGetter reads the active limits for a user tier; nil means no
// configuration exists.
type TransferLimitGetter interface {
	GetActive(ctx context.Context, userType string) (*models.TransferLimit, error)
}

// TransferLimitCache caches tier limits. A nil result is a miss.
type TransferLimitCache interface {
	GetTransferLimit(ctx context.Context, userType string) (*models.TransferLimit, error)
	SetTransferLimit(ctx context.Context, limit *models.TransferLimit) error
}

// DailyTotalReader reads the aggregates the limit checks run against.
type DailyTotalReader interface {
	GetDay(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyTotal, error)
	SumSentForMonth(ctx context.Context, userID uuid.UUID, month time.Time) (decimal.Decimal, error)
}

// LimitService validates a proposed transfer amount against the sender
// tier's per-transaction, daily and monthly caps. The checks fail closed
// when no limit configuration exists for the tier.
type LimitService struct {
	limits TransferLimitGetter
	cache  TransferLimitCache
	totals DailyTotalReader
}

// NewLimitService creates a limit enforcer. cache may be nil.
func NewLimitService(limits TransferLimitGetter, cache TransferLimitCache, totals DailyTotalReader) *LimitService {
	return &LimitService{limits: limits, cache: cache, totals: totals}
}

// Check returns nil when the amount passes every cap for the tier, or the
// first violated cap's business error. Callers run it once as an advisory
// pre-check and once more inside the transfer's unit of work; the reads see
// the transaction's snapshot there.
func (s *LimitService) Check(ctx context.Context, userID uuid.UUID, userType string, amount decimal.Decimal, today time.Time) error {
	limit, err := s.lookup(ctx, userType)
	if err != nil {
		return err
	}
	if limit == nil {
		logger.Log.Errorw("no active transfer limit", "user_type", userType)
		return errs.ErrLimitConfigMissing
	}

	if amount.LessThan(limit.MinAmount) {
		return errs.ErrBelowMinimum
	}
	if amount.GreaterThan(limit.PerTransactionLimit) {
		return errs.ErrExceedsPerTransactionLimit
	}

	sentToday := decimal.Zero
	day, err := s.totals.GetDay(ctx, userID, today)
	if err != nil {
		logger.Log.Errorw("failed to read daily totals", "user_id", userID, "error", err)
		return err
	}
	if day != nil {
		sentToday = day.TotalSent
	}
	if sentToday.Add(amount).GreaterThan(limit.DailyLimit) {
		return errs.ErrExceedsDailyLimit
	}

	sentThisMonth, err := s.totals.SumSentForMonth(ctx, userID, today)
	if err != nil {
		logger.Log.Errorw("failed to sum monthly totals", "user_id", userID, "error", err)
		return err
	}
	if sentThisMonth.Add(amount).GreaterThan(limit.MonthlyLimit) {
		return errs.ErrExceedsMonthlyLimit
	}

	return nil
}

func (s *LimitService) lookup(ctx context.Context, userType string) (*models.TransferLimit, error) {
	if s.cache != nil {
		if limit, err := s.cache.GetTransferLimit(ctx, userType); err == nil && limit != nil {
			return limit, nil
		}
	}

	limit, err := s.limits.GetActive(ctx, userType)
	if err != nil {
		logger.Log.Errorw("failed to read transfer limit", "user_type", userType, "error", err)
		return nil, err
	}

	if limit != nil && s.cache != nil {
		if err := s.cache.SetTransferLimit(ctx, limit); err != nil {
			logger.Log.Warnw("failed to cache transfer limit", "user_type", userType, "error", err)
		}
	}
	return limit, nil
}
