package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/paymentqa/paytest-backend/pkg/errors"
)

var (
	DefaultFeePercentage = decimal.NewFromFloat(2.9)
	DefaultFixedFee      = decimal.NewFromFloat(0.30)

	DefaultMinAmount = decimal.NewFromFloat(0.01)
	DefaultMaxAmount = decimal.NewFromFloat(10000.00)
)

var oneHundred = decimal.NewFromInt(100)

// ParseAmount converts raw input into a decimal amount, failing with
// INVALID_AMOUNT for non-numeric input.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInvalidAmount, err,
			fmt.Sprintf("invalid amount %q", raw))
	}
	return amount, nil
}

// CalculateFee computes amount*(percentage/100)+fixed rounded to 2 places.
func CalculateFee(amount, percentage, fixed decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(oneHundred).Add(fixed).Round(2)
}

// CalculateDefaultFee applies the standard 2.9% + 0.30 processing fee.
func CalculateDefaultFee(amount decimal.Decimal) decimal.Decimal {
	return CalculateFee(amount, DefaultFeePercentage, DefaultFixedFee)
}

// AmountWithinLimits reports whether min <= amount <= max.
func AmountWithinLimits(amount, min, max decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(min) && amount.LessThanOrEqual(max)
}

// ValidatePaymentAmount checks the amount against the default 0.01–10000.00
// range.
func ValidatePaymentAmount(amount decimal.Decimal) bool {
	return AmountWithinLimits(amount, DefaultMinAmount, DefaultMaxAmount)
}
