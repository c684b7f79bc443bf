package validation

import (
	"github.com/shopspring/decimal"

	"github.com/paymentqa/paytest-backend/pkg/enums"
)

// Subscription is a recurring payment payload.
type Subscription struct {
	Amount     decimal.Decimal       `json:"amount"`
	Interval   enums.BillingInterval `json:"interval" validate:"required"`
	Currency   string                `json:"currency" validate:"required"`
	CustomerID string                `json:"customer_id" validate:"required"`
}

// ValidateSubscription requires interval/currency/customer id present, a
// recognized interval, and an amount within the default limits.
func ValidateSubscription(sub Subscription) bool {
	if err := validate.Struct(sub); err != nil {
		return false
	}
	if !sub.Interval.IsValid() {
		return false
	}
	return ValidatePaymentAmount(sub.Amount)
}
