package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(billingAddressStructLevel, BillingAddress{})
	return v
}

// BillingAddress is the address attached to a payment instrument.
type BillingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

var usZipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

func billingAddressStructLevel(sl validator.StructLevel) {
	addr := sl.Current().Interface().(BillingAddress)

	fields := []struct {
		name  string
		value string
	}{
		{"Street", addr.Street},
		{"City", addr.City},
		{"State", addr.State},
		{"Zip", addr.Zip},
		{"Country", addr.Country},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			sl.ReportError(field.value, strings.ToLower(field.name), field.name, "notblank", "")
		}
	}

	if strings.EqualFold(strings.TrimSpace(addr.Country), "US") && !usZipPattern.MatchString(addr.Zip) {
		sl.ReportError(addr.Zip, "zip", "Zip", "uszip", "")
	}
}

// ValidateBillingAddress requires all five fields non-blank; US addresses
// additionally need a 5-digit or ZIP+4 code.
func ValidateBillingAddress(addr BillingAddress) bool {
	return validate.Struct(addr) == nil
}
