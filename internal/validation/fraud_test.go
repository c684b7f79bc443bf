package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckFraudIndicatorsClean(t *testing.T) {
	flags := CheckFraudIndicators(FraudCheckInput{
		Amount:                 decimal.NewFromFloat(49.99),
		BillingCountry:         "US",
		IPCountry:              "US",
		RecentTransactionCount: 2,
	})
	assert.Empty(t, flags)
}

func TestCheckFraudIndicatorsHighAmount(t *testing.T) {
	flags := CheckFraudIndicators(FraudCheckInput{
		Amount: decimal.NewFromFloat(10000.01),
	})
	assert.Equal(t, []string{FlagHighAmount}, flags)

	// The threshold itself does not trip the flag.
	flags = CheckFraudIndicators(FraudCheckInput{
		Amount: decimal.NewFromInt(10000),
	})
	assert.Empty(t, flags)
}

func TestCheckFraudIndicatorsCountryMismatch(t *testing.T) {
	flags := CheckFraudIndicators(FraudCheckInput{
		Amount:         decimal.NewFromInt(100),
		BillingCountry: "US",
		IPCountry:      "RU",
	})
	assert.Equal(t, []string{FlagCountryMismatch}, flags)

	// Missing either country means no mismatch.
	flags = CheckFraudIndicators(FraudCheckInput{
		Amount:         decimal.NewFromInt(100),
		BillingCountry: "US",
	})
	assert.Empty(t, flags)
}

func TestCheckFraudIndicatorsVelocity(t *testing.T) {
	flags := CheckFraudIndicators(FraudCheckInput{
		Amount:                 decimal.NewFromInt(100),
		RecentTransactionCount: 6,
	})
	assert.Equal(t, []string{FlagVelocityCheck}, flags)

	flags = CheckFraudIndicators(FraudCheckInput{
		Amount:                 decimal.NewFromInt(100),
		RecentTransactionCount: 5,
	})
	assert.Empty(t, flags)
}

func TestCheckFraudIndicatorsOrderIsFixed(t *testing.T) {
	flags := CheckFraudIndicators(FraudCheckInput{
		Amount:                 decimal.NewFromInt(50000),
		BillingCountry:         "US",
		IPCountry:              "CN",
		RecentTransactionCount: 9,
	})
	assert.Equal(t, []string{FlagHighAmount, FlagCountryMismatch, FlagVelocityCheck}, flags)
}
