package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paymentqa/paytest-backend/pkg/enums"
)

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{"valid visa", "4532015112830366", true},
		{"checksum off by one", "4532015112830367", false},
		{"valid visa classic", "4111111111111111", true},
		{"valid mastercard", "5555555555554444", true},
		{"valid amex", "378282246310005", true},
		{"spaces stripped", "4532 0151 1283 0366", true},
		{"hyphens stripped", "4532-0151-1283-0366", true},
		{"letters rejected", "4532a15112830366", false},
		{"empty rejected", "", false},
		{"whitespace only", "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCardNumber(tt.number))
		})
	}
}

func TestCardBrandFromNumber(t *testing.T) {
	tests := []struct {
		number string
		want   enums.CardBrand
	}{
		{"4111111111111111", enums.CardBrandVisa},
		{"4532015112830366", enums.CardBrandVisa},
		{"5555555555554444", enums.CardBrandMastercard},
		{"378282246310005", enums.CardBrandAmex},
		{"6011111111111117", enums.CardBrandDiscover},
		{"3056930902590", enums.CardBrandDiners},
		{"3530111333300000", enums.CardBrandJCB},
		{"1234567890123456", enums.CardBrandUnknown},
		{"", enums.CardBrandUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CardBrandFromNumber(tt.number), "number %s", tt.number)
	}
}

func TestValidateCVV(t *testing.T) {
	assert.True(t, ValidateCVV("123", enums.CardBrandVisa))
	assert.True(t, ValidateCVV("1234", enums.CardBrandAmex))
	assert.True(t, ValidateCVV(" 123 ", enums.CardBrandMastercard))

	assert.False(t, ValidateCVV("1234", enums.CardBrandVisa))
	assert.False(t, ValidateCVV("123", enums.CardBrandAmex))
	assert.False(t, ValidateCVV("12a", enums.CardBrandVisa))
	assert.False(t, ValidateCVV("", enums.CardBrandVisa))
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now()

	assert.True(t, ValidateExpiry(int(now.Month()), now.Year()),
		"card should stay valid through the end of the current month")
	assert.True(t, ValidateExpiry(1, now.Year()+2))

	assert.False(t, ValidateExpiry(int(now.Month()), now.Year()-1))
	assert.False(t, ValidateExpiry(13, now.Year()+1))
	assert.False(t, ValidateExpiry(0, now.Year()+1))
	assert.False(t, ValidateExpiry(6, 0))
}
