package enums

import "fmt"

// CardBrand identifies the network a card number belongs to.
type CardBrand string

const (
	CardBrandVisa       CardBrand = "visa"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandAmex       CardBrand = "amex"
	CardBrandDiscover   CardBrand = "discover"
	CardBrandDiners     CardBrand = "diners"
	CardBrandJCB        CardBrand = "jcb"
	CardBrandUnknown    CardBrand = "unknown"
)

var validCardBrands = []CardBrand{
	CardBrandVisa,
	CardBrandMastercard,
	CardBrandAmex,
	CardBrandDiscover,
	CardBrandDiners,
	CardBrandJCB,
}

// String implements fmt.Stringer.
func (c CardBrand) String() string {
	return string(c)
}

// IsValid reports whether the brand is a recognized network. CardBrandUnknown
// is the derivation fallback, not a valid brand.
func (c CardBrand) IsValid() bool {
	for _, candidate := range validCardBrands {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCardBrand converts raw input into a CardBrand.
func ParseCardBrand(value string) (CardBrand, error) {
	for _, candidate := range validCardBrands {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid card brand %q", value)
}
