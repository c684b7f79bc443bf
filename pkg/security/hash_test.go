package security

import (
	"strings"
	"testing"
)

func TestHashPaymentDataRoundTrip(t *testing.T) {
	encoded, err := HashPaymentData("4111111111111111", "")
	if err != nil {
		t.Fatalf("HashPaymentData failed: %v", err)
	}

	parts := strings.SplitN(encoded, ":", 2)
	if len(parts) != 2 {
		t.Fatalf("expected hash:salt form, got %q", encoded)
	}
	if len(parts[0]) != 64 {
		t.Fatalf("expected 64-char hex digest, got %d chars", len(parts[0]))
	}
	if len(parts[1]) != saltLength {
		t.Fatalf("expected %d-char salt, got %d chars", saltLength, len(parts[1]))
	}

	if !VerifyPaymentHash("4111111111111111", encoded) {
		t.Fatalf("expected hash to verify")
	}
}

func TestHashPaymentDataWithExplicitSaltIsStable(t *testing.T) {
	first, err := HashPaymentData("some data", "fixedsalt1234567")
	if err != nil {
		t.Fatalf("HashPaymentData failed: %v", err)
	}
	second, err := HashPaymentData("some data", "fixedsalt1234567")
	if err != nil {
		t.Fatalf("HashPaymentData failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected deterministic hash for explicit salt")
	}
}

func TestVerifyPaymentHashRejectsTampering(t *testing.T) {
	encoded, err := HashPaymentData("4111111111111111", "")
	if err != nil {
		t.Fatalf("HashPaymentData failed: %v", err)
	}

	if VerifyPaymentHash("4111111111111112", encoded) {
		t.Fatalf("expected different data to fail verification")
	}

	tampered := "0" + encoded[1:]
	if tampered != encoded && VerifyPaymentHash("4111111111111111", tampered) {
		t.Fatalf("expected tampered hash to fail verification")
	}

	if VerifyPaymentHash("4111111111111111", "no-separator") {
		t.Fatalf("expected malformed encoding to fail verification")
	}
}
