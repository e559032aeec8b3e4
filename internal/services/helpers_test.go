package services

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// decEq matches a decimal.Decimal by value, not representation.
type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

// passthroughTx makes a MockTxRunner run the unit of work inline.
func passthroughTx(tx *MockTxRunner) {
	tx.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}
