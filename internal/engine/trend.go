package engine

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// TrendComparison relates a current-period scalar to the previous period's.
type TrendComparison struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	PercentChange decimal.Decimal
}

// Compare computes the signed percent change from previous to current,
// rounded to 2 decimal places.
//
// Zero-baseline policy: when previous is 0 the change is 100 if current is
// positive and 0 otherwise, so a first month of activity reads as "+100%"
// rather than dividing by zero.
func Compare(current, previous decimal.Decimal) TrendComparison {
	tc := TrendComparison{Current: current, Previous: previous}

	if previous.IsZero() {
		if current.IsPositive() {
			tc.PercentChange = hundred
		} else {
			tc.PercentChange = decimal.Zero
		}
		return tc
	}

	tc.PercentChange = current.Sub(previous).Div(previous).Mul(hundred).Round(2)
	return tc
}
