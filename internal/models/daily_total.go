package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyTotal is the per-(user, day) aggregate of sent and received amounts,
// upserted on every completed transfer and read by the limit enforcer.
type DailyTotal struct {
	UserID           uuid.UUID       `db:"user_id"`
	Date             time.Time       `db:"date"`
	TotalSent        decimal.Decimal `db:"total_sent"`
	TotalReceived    decimal.Decimal `db:"total_received"`
	TransactionCount int             `db:"transaction_count"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// DateOf truncates t to its UTC calendar day, the key used by the daily
// totals table.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's UTC calendar month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
