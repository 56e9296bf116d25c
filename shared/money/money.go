// Package money handles the decimal-as-string convention used for room prices
// and booking amounts. Amounts are carried as strings across the contract and
// only parsed into decimals for arithmetic, so revenue sums never accumulate
// binary floating point drift.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal string into a decimal value. The empty string is
// treated as zero, matching a record whose amount was never set.
func Parse(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", value, err)
	}

	return amount, nil
}

// Sum parses and adds a series of decimal strings.
func Sum(values ...string) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, value := range values {
		amount, err := Parse(value)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(amount)
	}

	return total, nil
}

// Format renders a decimal back into the two-place string form stored on records.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// IsAmount reports whether value parses as a non-negative decimal. Used by the
// "amount" validation tag on create and update requests.
func IsAmount(value string) bool {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return false
	}

	return !amount.IsNegative()
}
