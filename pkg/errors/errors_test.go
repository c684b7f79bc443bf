package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, publicMsg: "validation failed", detailsOK: true},
		{code: CodeInvalidAmount, publicMsg: "invalid amount", detailsOK: true},
		{code: CodeUnsupportedEngine, publicMsg: "unsupported storage engine", detailsOK: true},
		{code: CodeNotConnected, publicMsg: "store is not connected"},
		{code: CodeNotFound, publicMsg: "record not found"},
		{code: CodeConflict, publicMsg: "conflict detected"},
		{code: CodeInternal, publicMsg: "internal error", retryable: true},
		{code: CodeDependency, publicMsg: "dependency unavailable", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "internal error" {
		t.Fatalf("expected internal metadata, got %q", meta.PublicMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing amount")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing amount" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	withDetails := base.WithDetails(map[string]string{"field": "amount"})
	if withDetails.Details() == nil {
		t.Fatalf("expected details to be attached")
	}

	cause := stdErrors.New("disk error")
	wrapped := Wrap(CodeDependency, cause, "insert failed")
	if wrapped.Unwrap() != cause {
		t.Fatalf("expected wrapped cause to unwrap")
	}
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("expected errors.Is to find cause")
	}
}

func TestWrapNilCause(t *testing.T) {
	wrapped := Wrap(CodeNotConnected, nil, "store closed")
	if wrapped.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}
	if wrapped.Code() != CodeNotConnected {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsAndHasCode(t *testing.T) {
	err := Wrap(CodeUnsupportedEngine, stdErrors.New("postgres"), "engine not supported")
	typed := As(err)
	if typed == nil || typed.Code() != CodeUnsupportedEngine {
		t.Fatalf("expected typed error with engine code")
	}
	if !HasCode(err, CodeUnsupportedEngine) {
		t.Fatalf("expected HasCode to match")
	}
	if HasCode(err, CodeNotFound) {
		t.Fatalf("unexpected code match")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatalf("plain errors should not convert")
	}
}

func TestDumpFlattensChain(t *testing.T) {
	err := Wrap(CodeDependency, stdErrors.New("db down"), "insert failed")
	dump := Dump(err)
	if dump.Code != CodeDependency {
		t.Fatalf("unexpected code %s", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", dump.Chain)
	}
	if Dump(nil).TopMessage != "" {
		t.Fatalf("nil error should dump empty")
	}
}
