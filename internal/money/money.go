package money

import "github.com/shopspring/decimal"

// MinorUnits is the number of decimal places for the currencies in use.
const MinorUnits = 2

// Round rounds d to the currency's minor-unit precision using round-half-up.
// Amounts in this system are never negative, so decimal's
// half-away-from-zero rounding is exactly half-up here.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(MinorUnits)
}
