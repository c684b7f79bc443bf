package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/paymentqa/paytest-backend/pkg/enums"
)

var cardNumberCleaner = strings.NewReplacer(" ", "", "-", "")

// Order matters: the first matching pattern wins.
var brandPatterns = []struct {
	brand   enums.CardBrand
	pattern *regexp.Regexp
}{
	{enums.CardBrandVisa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{enums.CardBrandMastercard, regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
	{enums.CardBrandAmex, regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{enums.CardBrandDiscover, regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
	{enums.CardBrandDiners, regexp.MustCompile(`^3[0689][0-9]{11}$`)},
	{enums.CardBrandJCB, regexp.MustCompile(`^(?:2131|1800|35\d{3})\d{11}$`)},
}

// ValidateCardNumber checks a card number with the Luhn algorithm. Spaces and
// hyphens are stripped; any other non-digit fails.
func ValidateCardNumber(number string) bool {
	number = cardNumberCleaner.Replace(number)
	if number == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// CardBrandFromNumber derives the network from the number pattern, falling
// back to CardBrandUnknown.
func CardBrandFromNumber(number string) enums.CardBrand {
	number = cardNumberCleaner.Replace(number)
	for _, candidate := range brandPatterns {
		if candidate.pattern.MatchString(number) {
			return candidate.brand
		}
	}
	return enums.CardBrandUnknown
}

// ValidateCVV checks the security code length for the brand: 4 digits for
// amex, 3 otherwise.
func ValidateCVV(cvv string, brand enums.CardBrand) bool {
	cvv = strings.TrimSpace(cvv)
	if cvv == "" {
		return false
	}
	for _, c := range cvv {
		if c < '0' || c > '9' {
			return false
		}
	}
	if brand == enums.CardBrandAmex {
		return len(cvv) == 4
	}
	return len(cvv) == 3
}

// ValidateExpiry reports whether a card expiring month/year is still usable.
// Cards stay valid through the end of the expiry month.
func ValidateExpiry(month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 1 {
		return false
	}
	// time.Date normalizes month 13 into January of the following year.
	firstInvalidDay := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.Local)
	return firstInvalidDay.After(time.Now())
}
