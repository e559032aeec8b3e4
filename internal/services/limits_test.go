package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

func standardLimit() *models.TransferLimit {
	return &models.TransferLimit{
		UserType:            models.TierStandard,
		DailyLimit:          decimal.RequireFromString("1000"),
		MonthlyLimit:        decimal.RequireFromString("5000"),
		PerTransactionLimit: decimal.RequireFromString("500"),
		MinAmount:           decimal.RequireFromString("0.01"),
		IsActive:            true,
	}
}

func TestLimitService_Check(t *testing.T) {
	userID := uuid.New()
	today := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		amount    string
		sentToday string
		sentMonth string
		wantErr   error
	}{
		{
			name:      "within all caps",
			amount:    "100",
			sentToday: "0",
			sentMonth: "0",
			wantErr:   nil,
		},
		{
			name:    "below minimum",
			amount:  "0.005",
			wantErr: errs.ErrBelowMinimum,
		},
		{
			name:    "exceeds per transaction limit",
			amount:  "500.01",
			wantErr: errs.ErrExceedsPerTransactionLimit,
		},
		{
			name:      "exceeds daily limit",
			amount:    "2",
			sentToday: "999",
			wantErr:   errs.ErrExceedsDailyLimit,
		},
		{
			name:      "exactly at daily limit passes",
			amount:    "1",
			sentToday: "999",
			sentMonth: "999",
			wantErr:   nil,
		},
		{
			name:      "exceeds monthly limit",
			amount:    "100",
			sentToday: "0",
			sentMonth: "4950",
			wantErr:   errs.ErrExceedsMonthlyLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limits := NewMockTransferLimitGetter(ctrl)
			limits.EXPECT().
				GetActive(gomock.Any(), models.TierStandard).
				Return(standardLimit(), nil)

			totals := NewMockDailyTotalReader(ctrl)
			if tt.sentToday != "" {
				totals.EXPECT().
					GetDay(gomock.Any(), userID, today).
					Return(&models.DailyTotal{
						UserID:    userID,
						Date:      models.DateOf(today),
						TotalSent: decimal.RequireFromString(tt.sentToday),
					}, nil)
			}
			if tt.sentMonth != "" {
				totals.EXPECT().
					SumSentForMonth(gomock.Any(), userID, today).
					Return(decimal.RequireFromString(tt.sentMonth), nil)
			}

			svc := NewLimitService(limits, nil, totals)
			err := svc.Check(context.Background(), userID, models.TierStandard, decimal.RequireFromString(tt.amount), today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLimitService_Check_NoActivityToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	today := time.Now().UTC()

	limits := NewMockTransferLimitGetter(ctrl)
	limits.EXPECT().
		GetActive(gomock.Any(), models.TierStandard).
		Return(standardLimit(), nil)

	totals := NewMockDailyTotalReader(ctrl)
	totals.EXPECT().GetDay(gomock.Any(), userID, today).Return(nil, nil)
	totals.EXPECT().SumSentForMonth(gomock.Any(), userID, today).Return(decimal.Zero, nil)

	svc := NewLimitService(limits, nil, totals)
	err := svc.Check(context.Background(), userID, models.TierStandard, decimal.RequireFromString("1000"), today)
	assert.NoError(t, err)
}

func TestLimitService_Check_MissingConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limits := NewMockTransferLimitGetter(ctrl)
	limits.EXPECT().
		GetActive(gomock.Any(), models.TierMerchant).
		Return(nil, nil)

	svc := NewLimitService(limits, nil, NewMockDailyTotalReader(ctrl))
	err := svc.Check(context.Background(), uuid.New(), models.TierMerchant, decimal.RequireFromString("10"), time.Now().UTC())
	assert.ErrorIs(t, err, errs.ErrLimitConfigMissing)
}

func TestLimitService_Check_CacheHitSkipsReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	today := time.Now().UTC()

	cache := NewMockTransferLimitCache(ctrl)
	cache.EXPECT().
		GetTransferLimit(gomock.Any(), models.TierStandard).
		Return(standardLimit(), nil)

	totals := NewMockDailyTotalReader(ctrl)
	totals.EXPECT().GetDay(gomock.Any(), userID, today).Return(nil, nil)
	totals.EXPECT().SumSentForMonth(gomock.Any(), userID, today).Return(decimal.Zero, nil)

	svc := NewLimitService(NewMockTransferLimitGetter(ctrl), cache, totals)
	err := svc.Check(context.Background(), userID, models.TierStandard, decimal.RequireFromString("10"), today)
	assert.NoError(t, err)
}
