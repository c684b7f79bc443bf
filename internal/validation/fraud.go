package validation

import (
	"github.com/shopspring/decimal"
)

// Fraud indicator flags, in emission order.
const (
	FlagHighAmount      = "high_amount"
	FlagCountryMismatch = "country_mismatch"
	FlagVelocityCheck   = "velocity_check"
)

var highAmountThreshold = decimal.NewFromInt(10000)

const velocityLimit = 5

// FraudCheckInput carries the transaction attributes the heuristics look at.
type FraudCheckInput struct {
	Amount                 decimal.Decimal
	BillingCountry         string
	IPCountry              string
	RecentTransactionCount int
}

// CheckFraudIndicators runs the threshold heuristics in fixed order and
// returns the triggered flags. The list may be empty.
func CheckFraudIndicators(in FraudCheckInput) []string {
	indicators := []string{}

	if in.Amount.GreaterThan(highAmountThreshold) {
		indicators = append(indicators, FlagHighAmount)
	}

	if in.BillingCountry != "" && in.IPCountry != "" && in.BillingCountry != in.IPCountry {
		indicators = append(indicators, FlagCountryMismatch)
	}

	if in.RecentTransactionCount > velocityLimit {
		indicators = append(indicators, FlagVelocityCheck)
	}

	return indicators
}
