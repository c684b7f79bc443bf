package gateway

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/paymentqa/paytest-backend/pkg/enums"
)

// Fixed, Luhn-valid card numbers for exercising gateway flows without real
// cardholder data.
var testCardNumbers = map[enums.CardBrand]string{
	enums.CardBrandVisa:       "4532015112830366",
	enums.CardBrandMastercard: "5555555555554444",
	enums.CardBrandAmex:       "378282246310005",
	enums.CardBrandDiscover:   "6011111111111117",
}

const defaultTestCard = "4111111111111111"

const (
	referenceTimestampFormat = "20060102150405"
	referenceCharset         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	DefaultReferencePrefix = "PAY"
	DefaultReferenceLength = 12
)

// Response is the simulated gateway answer for one payment attempt.
type Response struct {
	Status            string    `json:"status"`
	TransactionID     string    `json:"transaction_id,omitempty"`
	AuthorizationCode string    `json:"authorization_code,omitempty"`
	ErrorMessage      string    `json:"error_message,omitempty"`
	ErrorCode         string    `json:"error_code,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

var declineReasons = []string{
	"Insufficient funds",
	"Card declined",
	"Invalid card number",
	"Expired card",
	"Transaction blocked",
}

// TestCardNumber returns the canonical test number for the brand, falling
// back to the generic visa number for brands without a fixture.
func TestCardNumber(brand enums.CardBrand) string {
	if number, ok := testCardNumbers[brand]; ok {
		return number
	}
	return defaultTestCard
}

// PaymentReference builds a reference of the form
// {prefix}{yyyymmddhhmmss}{random}. The random tail pads the reference out to
// length characters beyond the prefix; a length at or below the timestamp
// width yields no tail.
func PaymentReference(prefix string, length int) string {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	if length <= 0 {
		length = DefaultReferenceLength
	}

	reference := prefix + time.Now().UTC().Format(referenceTimestampFormat)
	for i := len(referenceTimestampFormat); i < length; i++ {
		reference += string(referenceCharset[randInt(len(referenceCharset))])
	}
	return reference
}

// SimulateResponse rolls the dice against successRate and produces either an
// approved response with an authorization code or a decline with one of the
// canned gateway reasons.
func SimulateResponse(successRate float64) Response {
	now := time.Now().UTC()

	if randFloat() < successRate {
		return Response{
			Status:            "success",
			TransactionID:     "sim_" + uuid.NewString(),
			AuthorizationCode: authorizationCode(),
			Timestamp:         now,
		}
	}

	return Response{
		Status:       "failed",
		ErrorMessage: declineReasons[randInt(len(declineReasons))],
		ErrorCode:    "CARD_DECLINED",
		Timestamp:    now,
	}
}

func authorizationCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = byte('0' + randInt(10))
	}
	return string(code)
}

func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}

func randFloat() float64 {
	return float64(randInt(1 << 30)) / float64(1<<30)
}
